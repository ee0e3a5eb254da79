// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and first-run seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

The schema includes:

  - feedback: One row per star-rating submission, immutable after insert
  - settings: Key/value configuration entries (only admin_password today)

# Seeding

SeedAdminPassword writes the configured default password into settings on
the very first startup only. A password that was later changed through the
dashboard survives restarts untouched:

	if err := db.SeedAdminPassword(conn, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}
*/
package db
