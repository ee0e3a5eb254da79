// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web holds the embedded HTML templates for the three server-rendered
// pages: the public feedback form, the admin login, and the dashboard.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates is parsed once at startup; templates are addressed by file name
// (feedback.html, login.html, dashboard.html).
var Templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// LoginData feeds login.html. Error is shown above the form when non-empty.
type LoginData struct {
	Error string
}
