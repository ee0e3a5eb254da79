// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: Structured request/completion logging via slog
  - RequireLogin: Session guard that redirects anonymous requests to /login

RequireLogin composes around individual handlers at the routing layer:

	mux.HandleFunc("GET /dashboard",
		middleware.WithLogging(middleware.RequireLogin(sm, pageHandler.Dashboard)))

The redirect applies to protected API routes too, matching the behavior the
dashboard pages were built against.

# JSON Helpers

  - JSONResponse: Write a JSON body with status code
  - ErrorResponse: Write the {error, success:false} error envelope
  - ParseJSONBody: Decode a request body into a struct
*/
package middleware
