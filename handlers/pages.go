// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-rate/web"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// FeedbackForm handles GET / and GET /feedback
func (h *PageHandler) FeedbackForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "feedback.html")
}

// Dashboard handles GET /dashboard (admin only, guarded at the router).
// The page fetches /api/stats and /api/feedback client-side.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "dashboard.html")
}

func renderPage(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Templates.ExecuteTemplate(w, name, nil); err != nil {
		slog.Error("failed to render page", "template", name, "error", err)
	}
}
