// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-rate/cliparse"
	"github.com/danielhkuo/quickly-rate/handlers"
	"github.com/danielhkuo/quickly-rate/middleware"
	"github.com/danielhkuo/quickly-rate/sessions"
	"github.com/danielhkuo/quickly-rate/store"
)

func NewRouter(st *store.Store, sm *sessions.Manager, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	feedbackHandler := handlers.NewFeedbackHandler(st)
	authHandler := handlers.NewAuthHandler(st, sm)
	qrHandler := handlers.NewQRHandler(cfg)
	pageHandler := handlers.NewPageHandler()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.FeedbackForm))
	mux.HandleFunc("GET /feedback", middleware.WithLogging(pageHandler.FeedbackForm))

	// Feedback submission (public)
	mux.HandleFunc("POST /api/feedback", middleware.WithLogging(feedbackHandler.Submit))

	// Admin authentication
	mux.HandleFunc("GET /login", middleware.WithLogging(authHandler.ShowLogin))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(authHandler.Logout))

	// Admin-only routes (anonymous requests redirect to /login)
	mux.HandleFunc("GET /dashboard", middleware.WithLogging(middleware.RequireLogin(sm, pageHandler.Dashboard)))
	mux.HandleFunc("GET /api/feedback", middleware.WithLogging(middleware.RequireLogin(sm, feedbackHandler.List)))
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(middleware.RequireLogin(sm, feedbackHandler.GetStats)))
	mux.HandleFunc("POST /api/change-password", middleware.WithLogging(middleware.RequireLogin(sm, authHandler.ChangePassword)))

	// QR code for the printed feedback link (public)
	mux.HandleFunc("GET /qr", middleware.WithLogging(qrHandler.GetQR))

	return mux
}
