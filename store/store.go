// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/danielhkuo/quickly-rate/models"
)

type Store struct {
	db *sql.DB

	// Fallback when the settings row is missing (pre-seeding reads).
	defaultAdminPassword string
}

func New(db *sql.DB, defaultAdminPassword string) *Store {
	return &Store{db: db, defaultAdminPassword: defaultAdminPassword}
}

// InsertFeedback appends a new feedback row and returns its ID.
// The timestamp is assigned here; rating validity is the caller's
// responsibility.
func (s *Store) InsertFeedback(rating int, comment, name, email string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO feedback (rating, comment, name, email, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, rating, comment, name, email, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert feedback: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read feedback id: %w", err)
	}

	return id, nil
}

// ListFeedback returns all feedback, newest first. The id tiebreak keeps the
// order stable for rows sharing a timestamp.
func (s *Store) ListFeedback() ([]models.Feedback, error) {
	rows, err := s.db.Query(`
		SELECT id, rating, comment, name, email, created_at
		FROM feedback
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	feedback := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.Rating, &f.Comment, &f.Name, &f.Email, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		feedback = append(feedback, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}

	return feedback, nil
}

// GetSetting returns the value for key. The second return value reports
// whether the key exists; a missing key is not an error.
func (s *Store) GetSetting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query setting %q: %w", key, err)
	}

	return value, true, nil
}

// SetSetting upserts the value for key.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}

	return nil
}

// AdminPassword reads the current admin password from settings. Always a
// fresh read - a password change takes effect on the next login attempt.
func (s *Store) AdminPassword() (string, error) {
	value, ok, err := s.GetSetting(models.SettingAdminPassword)
	if err != nil {
		return "", err
	}
	if !ok {
		return s.defaultAdminPassword, nil
	}

	return value, nil
}

// SetAdminPassword overwrites the stored admin password.
func (s *Store) SetAdminPassword(next string) error {
	return s.SetSetting(models.SettingAdminPassword, next)
}

// Stats computes aggregate statistics over all feedback.
func (s *Store) Stats() (models.Stats, error) {
	stats := models.Stats{Distribution: map[int]int{}}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM feedback`, &stats.Total},
		{`SELECT COUNT(*) FROM feedback WHERE rating >= 4`, &stats.Positive},
		{`SELECT COUNT(*) FROM feedback WHERE rating = 3`, &stats.Medium},
		{`SELECT COUNT(*) FROM feedback WHERE rating <= 2`, &stats.Negative},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return models.Stats{}, fmt.Errorf("failed to count feedback: %w", err)
		}
	}

	// AVG is NULL on an empty table; report 0 in that case
	var avg sql.NullFloat64
	if err := s.db.QueryRow(`SELECT AVG(rating) FROM feedback`).Scan(&avg); err != nil {
		return models.Stats{}, fmt.Errorf("failed to average ratings: %w", err)
	}
	if avg.Valid {
		stats.Average = math.Round(avg.Float64*100) / 100
	}

	rows, err := s.db.Query(`
		SELECT rating, COUNT(*)
		FROM feedback
		GROUP BY rating
		ORDER BY rating DESC
	`)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to query rating distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return models.Stats{}, fmt.Errorf("failed to scan rating distribution: %w", err)
		}
		stats.Distribution[rating] = count
	}
	if err := rows.Err(); err != nil {
		return models.Stats{}, fmt.Errorf("failed to read rating distribution: %w", err)
	}

	return stats, nil
}
