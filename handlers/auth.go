// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-rate/middleware"
	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/sessions"
	"github.com/danielhkuo/quickly-rate/store"
	"github.com/danielhkuo/quickly-rate/web"
)

type AuthHandler struct {
	st *store.Store
	sm *sessions.Manager
}

func NewAuthHandler(st *store.Store, sm *sessions.Manager) *AuthHandler {
	return &AuthHandler{st: st, sm: sm}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	renderLogin(w, "")
}

// Login handles POST /login
// Compares the submitted form password against the stored admin password.
// The password is read fresh from the store on every attempt, so a change
// applies to the very next login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderLogin(w, "Invalid password")
		return
	}
	password := r.PostFormValue("password")

	current, err := h.st.AdminPassword()
	if err != nil {
		slog.Error("failed to read admin password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Plaintext equality, case-sensitive. Matches the historical behavior;
	// see DESIGN.md before "fixing" this.
	if password != current {
		renderLogin(w, "Invalid password")
		return
	}

	if err := h.sm.SetLoggedIn(w, r); err != nil {
		slog.Error("failed to save session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sm.Clear(w, r); err != nil {
		slog.Error("failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// ChangePassword handles POST /api/change-password (admin only, guarded at
// the router)
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		middleware.ErrorResponse(w, http.StatusBadRequest, "New passwords do not match")
		return
	}
	if len(req.NewPassword) < 4 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Password must be at least 4 characters long")
		return
	}

	current, err := h.st.AdminPassword()
	if err != nil {
		slog.Error("failed to read admin password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if req.CurrentPassword != current {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	if err := h.st.SetAdminPassword(req.NewPassword); err != nil {
		slog.Error("failed to update admin password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Password changed successfully",
		Success: true,
	})
}

func renderLogin(w http.ResponseWriter, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Templates.ExecuteTemplate(w, "login.html", web.LoginData{Error: errMsg}); err != nil {
		slog.Error("failed to render login page", "error", err)
	}
}
