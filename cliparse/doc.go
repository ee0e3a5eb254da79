// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabasePath: SQLite database file (default: feedback.db)
  - SessionSecret: Secret for session cookie signing
  - AdminPassword: Default admin password, seeded on first startup
  - BaseURL: Absolute base URL for the QR feedback link (optional)

# CLI Flags

	-p                Server port
	-d                Database file path
	-b                Base URL for QR link
	--session-secret  Session signing secret
	--admin-password  Default admin password

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_PATH  → -d
	BASE_URL       → -b
	SECRET_KEY     → --session-secret
	ADMIN_PASSWORD → --admin-password

CLI flags take precedence over environment variables.

# Defaults

Every setting has a default, so the server starts with no configuration at
all. The session secret and admin password defaults are intentionally the
same well-known insecure strings the app has always shipped with; override
both in any real deployment.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite", cfg.DatabasePath)
	// ...
	mux := router.NewRouter(st, sm, cfg)
*/
package cliparse
