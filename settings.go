package main

import (
	"database/sql"
	"fmt"
)

// Keys for the editable page copy rendered on the static pages.
const (
	aboutSetting   = "about"
	contactSetting = "contact"
)

func getSetting(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value, nil
}

func setSetting(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return nil
}

// seedSettings fills in default page copy for any key that has never
// been set. Existing values are left alone.
func seedSettings(db *sql.DB) error {
	defaults := map[string]string{
		aboutSetting:   "A small blog about whatever comes to mind.",
		contactSetting: "Want to get in touch? Send an email and say hello.",
	}

	for key, value := range defaults {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM settings WHERE key = ?", key).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if _, err := db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("seeding setting %q: %w", key, err)
		}
	}

	return nil
}
