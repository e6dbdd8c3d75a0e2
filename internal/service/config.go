package service

import (
	"database/sql"
	"fmt"
	"strings"
)

const (
	ConfigDefaultUser = "default_user_id"
	ConfigCurrency    = "currency"
)

const DefaultCurrency = "NT$"

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return invalid("config key", "is required")
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, invalid("config key", "is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

// Currency returns the configured display currency, defaulting to NT$.
func Currency(db *sql.DB) (string, error) {
	value, ok, err := GetConfig(db, ConfigCurrency)
	if err != nil {
		return "", err
	}
	if !ok || value == "" {
		return DefaultCurrency, nil
	}
	return value, nil
}
