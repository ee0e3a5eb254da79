// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package qr

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// FeedbackPath is the public route every QR code points at.
const FeedbackPath = "/feedback"

// imageSize matches the historical output: 10px modules plus a 4-module
// quiet zone around a version-1 symbol.
const imageSize = 290

// Generate encodes baseURL + FeedbackPath as a QR symbol (error correction
// level Low, black on white) and returns the PNG bytes. Output is
// deterministic for a given baseURL.
func Generate(baseURL string) ([]byte, error) {
	feedbackURL := strings.TrimRight(baseURL, "/") + FeedbackPath

	png, err := qrcode.Encode(feedbackURL, qrcode.Low, imageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return png, nil
}
