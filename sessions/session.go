// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sessions

import (
	"crypto/sha256"
	"net/http"

	gorilla "github.com/gorilla/sessions"
)

const sessionName = "admin_session"

// Manager owns the signed cookie store holding the admin logged_in flag.
type Manager struct {
	store *gorilla.CookieStore
}

// New derives two keys from the configured secret (signing + encryption,
// sturdier than signing alone) and builds the cookie store.
func New(secret string) *Manager {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	store := gorilla.NewCookieStore(h[:], e[:])
	store.Options = &gorilla.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store}
}

// LoggedIn reports whether the request carries an authenticated session.
// A missing or tampered cookie simply reads as anonymous.
func (m *Manager) LoggedIn(r *http.Request) bool {
	s, err := m.store.Get(r, sessionName)
	if err != nil {
		return false
	}
	v, ok := s.Values["logged_in"].(bool)
	return ok && v
}

// SetLoggedIn marks the session authenticated and writes the Set-Cookie
// header. A corrupt incoming cookie is replaced rather than rejected.
func (m *Manager) SetLoggedIn(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values["logged_in"] = true
	return s.Save(r, w)
}

// Clear drops the logged_in flag, returning the session to anonymous.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, sessionName)
	delete(s.Values, "logged_in")
	return s.Save(r, w)
}
