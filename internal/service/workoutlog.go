package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/chiawen/mealtrack/internal/model"
)

// Workout logs are pure storage: they come from the importer or manual
// entry and never feed target computation.

type AddWorkoutLogInput struct {
	UserID      string
	Activity    string
	DurationMin *int
	Source      string
	LoggedAt    time.Time
	Notes       string
}

func AddWorkoutLog(db *sql.DB, in AddWorkoutLogInput) (int64, error) {
	in.Activity = strings.TrimSpace(in.Activity)
	if in.Activity == "" {
		return 0, invalid("activity", "is required")
	}
	if in.DurationMin != nil && *in.DurationMin <= 0 {
		return 0, invalid("duration", "must be > 0 minutes")
	}
	if strings.TrimSpace(in.Source) == "" {
		in.Source = "manual"
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}

	res, err := db.Exec(`
INSERT INTO workout_logs(user_id, activity, duration_min, source, logged_at, notes)
VALUES(?, ?, ?, ?, ?, ?)
`, in.UserID, in.Activity, in.DurationMin, in.Source, in.LoggedAt.UTC().Format(time.RFC3339), strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("insert workout log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted workout log id: %w", err)
	}
	return id, nil
}

// ListWorkoutLogs returns newest-first workout logs; limit <= 0 returns all.
func ListWorkoutLogs(db *sql.DB, userID string, limit int) ([]model.WorkoutLog, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.Query(`
SELECT id, user_id, activity, duration_min, source, logged_at, notes
FROM workout_logs
WHERE user_id = ?
ORDER BY logged_at DESC
LIMIT ?
`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	defer rows.Close()

	logs := make([]model.WorkoutLog, 0)
	for rows.Next() {
		var l model.WorkoutLog
		var loggedAtRaw string
		var duration sql.NullInt64
		if err := rows.Scan(&l.ID, &l.UserID, &l.Activity, &duration, &l.Source, &loggedAtRaw, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan workout log: %w", err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for workout log %d: %w", l.ID, err)
		}
		l.LoggedAt = loggedAt
		if duration.Valid {
			v := int(duration.Int64)
			l.DurationMin = &v
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout logs: %w", err)
	}
	return logs, nil
}

func DeleteWorkoutLog(db *sql.DB, userID string, id int64) error {
	if id <= 0 {
		return invalid("workout log id", "must be > 0")
	}
	res, err := db.Exec(`DELETE FROM workout_logs WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout log %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for workout log %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("workout log %d: %w", id, ErrNotFound)
	}
	return nil
}
