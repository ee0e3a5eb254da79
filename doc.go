// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Rate server.

Quickly Rate is a small feedback-collection web application: visitors submit
1-5 star ratings with an optional comment and contact details, and an admin
dashboard (behind a shared-password login) shows the collected feedback and
aggregate statistics. A QR endpoint renders the public feedback URL as a
scannable PNG for print material.

# Starting the Server

The server runs against a single SQLite database file:

	go run main.go

Or with flags:

	go run main.go -p 5000 -d feedback.db

# Configuration

Optional settings (all have defaults):

  - PORT (-p): Server port (default: 5000)
  - DATABASE_PATH (-d): SQLite database file (default: feedback.db)
  - SECRET_KEY (--session-secret): Session cookie signing secret
  - ADMIN_PASSWORD (--admin-password): Default admin password, seeded into
    the settings table on first startup
  - BASE_URL (-b): Absolute base URL for the QR code link (default: derived
    from the incoming request)

The secret key and admin password fall back to insecure hardcoded defaults
when unset. Do not run with the defaults outside local development.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (feedback, auth, stats, QR, pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, JSON helpers, login guard
  - models: Request/response types
  - sessions: Cookie session store for the admin login flag
  - store: Typed persistence layer (feedback + settings tables)
  - db: Schema creation and admin password seeding
  - qr: Feedback-link QR code generation
  - web: Embedded HTML templates
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
