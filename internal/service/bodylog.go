package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/chiawen/mealtrack/internal/model"
)

type AddBodyLogInput struct {
	UserID     string
	WeightKg   float64
	BodyFatPct *float64
	LoggedAt   time.Time
	Notes      string
}

func AddBodyLog(db *sql.DB, in AddBodyLogInput) (int64, error) {
	if in.WeightKg <= 0 {
		return 0, invalid("weight", "must be > 0 kg")
	}
	if in.BodyFatPct != nil && (*in.BodyFatPct < 0 || *in.BodyFatPct > 100) {
		return 0, invalid("body fat", "must be between 0 and 100 percent")
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}

	res, err := db.Exec(`
INSERT INTO body_logs(user_id, weight_kg, body_fat_pct, logged_at, notes)
VALUES(?, ?, ?, ?, ?)
`, in.UserID, in.WeightKg, in.BodyFatPct, in.LoggedAt.UTC().Format(time.RFC3339), strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("insert body log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted body log id: %w", err)
	}
	return id, nil
}

// ListBodyLogs returns newest-first body logs; limit <= 0 returns all.
func ListBodyLogs(db *sql.DB, userID string, limit int) ([]model.BodyLog, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.Query(`
SELECT id, user_id, weight_kg, body_fat_pct, logged_at, notes
FROM body_logs
WHERE user_id = ?
ORDER BY logged_at DESC
LIMIT ?
`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list body logs: %w", err)
	}
	defer rows.Close()

	logs := make([]model.BodyLog, 0)
	for rows.Next() {
		var l model.BodyLog
		var loggedAtRaw string
		var bodyFat sql.NullFloat64
		if err := rows.Scan(&l.ID, &l.UserID, &l.WeightKg, &bodyFat, &loggedAtRaw, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan body log: %w", err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for body log %d: %w", l.ID, err)
		}
		l.LoggedAt = loggedAt
		if bodyFat.Valid {
			v := bodyFat.Float64
			l.BodyFatPct = &v
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate body logs: %w", err)
	}
	return logs, nil
}

func DeleteBodyLog(db *sql.DB, userID string, id int64) error {
	if id <= 0 {
		return invalid("body log id", "must be > 0")
	}
	res, err := db.Exec(`DELETE FROM body_logs WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete body log %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for body log %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("body log %d: %w", id, ErrNotFound)
	}
	return nil
}
