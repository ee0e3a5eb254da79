// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-rate/cliparse"
	"github.com/danielhkuo/quickly-rate/db"
)

// TestAdminPassword is the seeded admin password in every test database
const TestAdminPassword = "test-admin-pass"

// SetupTestDB creates a fresh SQLite database in a per-test temp directory
// with the full schema and a seeded admin password
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "feedback.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.SeedAdminPassword(conn, TestAdminPassword); err != nil {
		t.Fatalf("Failed to seed admin password: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabasePath:  ":memory:",
		SessionSecret: "test-session-secret",
		AdminPassword: TestAdminPassword,
		BaseURL:       "http://localhost:5000",
	}
}

// InsertTestFeedback inserts a feedback row with an explicit timestamp and
// returns its ID. Explicit timestamps keep ordering assertions deterministic.
func InsertTestFeedback(t *testing.T, conn *sql.DB, rating int, comment string, createdAt time.Time) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO feedback (rating, comment, name, email, created_at)
		VALUES (?, ?, '', '', ?)
	`, rating, comment, createdAt.UTC())
	if err != nil {
		t.Fatalf("Failed to insert test feedback: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test feedback id: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// Login performs a POST /login against the mux and returns the session
// cookies to attach to subsequent requests
func Login(t *testing.T, mux http.Handler, password string) []*http.Cookie {
	t.Helper()

	form := url.Values{"password": {password}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Login failed: expected 302, got %d. Body: %s", w.Code, w.Body.String())
	}

	return w.Result().Cookies()
}

// AddCookies attaches cookies (from Login) to a request
func AddCookies(req *http.Request, cookies []*http.Cookie) {
	for _, c := range cookies {
		req.AddCookie(c)
	}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
