package mealtrack

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chiawen/mealtrack/internal/app"
	"github.com/chiawen/mealtrack/internal/db"
	"github.com/chiawen/mealtrack/internal/logger"
	"github.com/chiawen/mealtrack/internal/model"
	"github.com/chiawen/mealtrack/internal/service"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if env := os.Getenv("MEALTRACK_DB"); env != "" {
		return env, nil
	}
	return app.DefaultDBPath()
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	logger.Debug("database ready", zap.String("path", path))
	return run(sqldb)
}

// withUser runs against the local default user, seeding it on first use.
func withUser(run func(*sql.DB, string) error) error {
	return withDB(func(sqldb *sql.DB) error {
		userID, err := service.EnsureDefaultUser(sqldb)
		if err != nil {
			return err
		}
		logger.Debug("resolved default user", zap.String("user_id", userID))
		return run(sqldb, userID)
	})
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func parseDateTimeOrNow(date, timeStr string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)
	if date == "" && timeStr == "" {
		return time.Now(), nil
	}
	if date == "" {
		return time.Time{}, fmt.Errorf("--date is required when --time is set")
	}
	if timeStr == "" {
		t, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
		}
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date/--time (expected YYYY-MM-DD and HH:MM)")
	}
	return t, nil
}

func parseMealSlot(value string) (model.MealSlot, error) {
	slot := model.MealSlot(strings.TrimSpace(strings.ToLower(value)))
	switch slot {
	case model.SlotBreakfast, model.SlotLunch, model.SlotDinner, model.SlotSnack:
		return slot, nil
	}
	return "", fmt.Errorf("invalid --slot %q (expected breakfast, lunch, dinner, or snack)", value)
}
