// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

NewRouter wires handlers to paths using Go 1.22+ method routing on the
standard http.ServeMux:

	mux := router.NewRouter(st, sm, cfg)

Protected routes (dashboard, feedback listing, stats, password change) are
wrapped with middleware.RequireLogin; everything else is public. All routes
except /health get request logging.
*/
package router
