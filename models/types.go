// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Setting keys
const (
	SettingAdminPassword = "admin_password"
)

// Rating bounds for a feedback submission
const (
	MinRating = 1
	MaxRating = 5
)

// Request types

type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// Domain types

type Feedback struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarizes all feedback collected so far. Positive covers 4-5 star
// ratings, Medium exactly 3, Negative 1-2. Average is rounded to two decimal
// places and zero when no feedback exists. Distribution only contains rating
// values that actually occur.
type Stats struct {
	Total        int         `json:"total"`
	Positive     int         `json:"positive"`
	Medium       int         `json:"medium"`
	Negative     int         `json:"negative"`
	Average      float64     `json:"average"`
	Distribution map[int]int `json:"distribution"`
}
