// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Insecure fallbacks kept for compatibility with existing deployments.
// Override via SECRET_KEY / ADMIN_PASSWORD in anything public-facing.
const (
	DefaultSessionSecret = "your-secret-key-change-this-in-production"
	DefaultAdminPassword = "admin123"
)

type Config struct {
	Port          int
	DatabasePath  string
	SessionSecret string
	AdminPassword string
	BaseURL       string
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-rate", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database file path")
	fs.StringVar(&cfg.BaseURL, "b", "", "Base URL for the QR feedback link (prefer env)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session signing secret (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Default admin password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "feedback.db"
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}

	// Secrets - insecure defaults when unset
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SECRET_KEY")
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = DefaultSessionSecret
	}

	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = DefaultAdminPassword
	}

	return cfg, nil
}
