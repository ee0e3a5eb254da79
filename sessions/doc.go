// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sessions wraps gorilla/sessions for the admin login state.

The only per-client state the server keeps is a boolean logged_in flag in a
signed (and encrypted) cookie named admin_session. There is no server-side
session table; the cookie is the session.

	sm := sessions.New(cfg.SessionSecret)

	sm.SetLoggedIn(w, r) // on successful login
	sm.LoggedIn(r)       // guard check
	sm.Clear(w, r)       // on logout

Cookies expire after 7 days. An invalid or tampered cookie is treated as
anonymous, never as an error.
*/
package sessions
