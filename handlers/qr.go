// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-rate/cliparse"
	"github.com/danielhkuo/quickly-rate/middleware"
	"github.com/danielhkuo/quickly-rate/qr"
)

type QRHandler struct {
	cfg cliparse.Config
}

func NewQRHandler(cfg cliparse.Config) *QRHandler {
	return &QRHandler{cfg: cfg}
}

// GetQR handles GET /qr
// Encodes the public feedback URL as a PNG. The base URL comes from config
// when set; otherwise it is derived from the incoming request.
func (h *QRHandler) GetQR(w http.ResponseWriter, r *http.Request) {
	baseURL := h.cfg.BaseURL
	if baseURL == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		baseURL = scheme + "://" + r.Host
	}

	png, err := qr.Generate(baseURL)
	if err != nil {
		slog.Error("failed to generate QR code", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		slog.Error("failed to write QR response", "error", err)
	}
}
