// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-rate/middleware"
	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/store"
)

type FeedbackHandler struct {
	st *store.Store
}

func NewFeedbackHandler(st *store.Store) *FeedbackHandler {
	return &FeedbackHandler{st: st}
}

// Submit handles POST /api/feedback
// Public endpoint; the only validation is the 1-5 rating range. A missing
// rating decodes as 0 and is rejected like any other out-of-range value.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitFeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	if _, err := h.st.InsertFeedback(req.Rating, req.Comment, req.Name, req.Email); err != nil {
		slog.Error("failed to insert feedback", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Feedback submitted successfully",
		Success: true,
	})
}

// List handles GET /api/feedback (admin only, guarded at the router)
// Returns every submission, newest first.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.st.ListFeedback()
	if err != nil {
		slog.Error("failed to list feedback", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, feedback)
}

// GetStats handles GET /api/stats (admin only, guarded at the router)
func (h *FeedbackHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.st.Stats()
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}
