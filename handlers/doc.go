// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for Quickly Rate.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - FeedbackHandler: Feedback submission, listing, and statistics
  - AuthHandler: Login, logout, and admin password change
  - QRHandler: Feedback-link QR code PNG
  - PageHandler: Server-rendered HTML pages

	feedbackHandler := handlers.NewFeedbackHandler(st)
	authHandler := handlers.NewAuthHandler(st, sm)

# Public Surface

	GET  /, /feedback     → FeedbackForm (star-rating form page)
	POST /api/feedback    → Submit (rating 1-5 required, rest optional)
	GET  /login           → ShowLogin
	POST /login           → Login (form password, redirects to /dashboard)
	GET  /logout          → Logout
	GET  /qr              → GetQR (image/png)

# Admin Surface

Protected routes are wrapped with middleware.RequireLogin at the router;
anonymous requests get a 302 to /login:

	GET  /dashboard           → Dashboard
	GET  /api/feedback        → List (newest first)
	GET  /api/stats           → GetStats
	POST /api/change-password → ChangePassword

# Response Envelopes

JSON endpoints answer with models.MessageResponse on success and
models.ErrorResponse on failure. Unexpected store errors surface as 500s
with the underlying message in the error field.
*/
package handlers
