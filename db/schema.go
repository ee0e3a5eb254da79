// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedAdminPassword inserts the admin_password setting if no row exists yet.
// Idempotent: an already-configured (or later changed) password is never
// overwritten.
func SeedAdminPassword(db *sql.DB, defaultPassword string) error {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, "admin_password").Scan(&value)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check admin password setting: %w", err)
	}

	_, err = db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)`, "admin_password", defaultPassword)
	if err != nil {
		return fmt.Errorf("failed to seed admin password: %w", err)
	}

	return nil
}

const schema = `
-- Feedback submissions
CREATE TABLE IF NOT EXISTS feedback (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    rating INTEGER NOT NULL,
    comment TEXT,
    name TEXT,
    email TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Key/value settings (currently only admin_password)
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
