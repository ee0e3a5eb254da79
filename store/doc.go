// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the typed persistence layer over the SQLite database.

# Store

A Store wraps *sql.DB and maps rows to the structs in package models:

	st := store.New(dbConn, cfg.AdminPassword)

# Feedback

	id, err := st.InsertFeedback(5, "great", "Alice", "a@example.com")
	list, err := st.ListFeedback() // newest first
	stats, err := st.Stats()

Feedback rows are immutable: there is no update or delete.

# Settings

Generic key/value access plus admin-password convenience wrappers:

	value, ok, err := st.GetSetting("admin_password")
	err = st.SetSetting("admin_password", "hunter2")

	current, err := st.AdminPassword() // fresh read, never cached
	err = st.SetAdminPassword("hunter2")

AdminPassword falls back to the configured default when the settings row is
missing, mirroring first-run behavior before seeding.
*/
package store
