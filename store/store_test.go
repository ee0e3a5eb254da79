// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"testing"
	"time"

	"github.com/danielhkuo/quickly-rate/testutil"
)

func TestInsertAndListFeedback(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	st := New(conn, testutil.TestAdminPassword)

	id, err := st.InsertFeedback(5, "great service", "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("InsertFeedback failed: %v", err)
	}
	if id == 0 {
		t.Error("Expected non-zero feedback ID")
	}

	feedback, err := st.ListFeedback()
	if err != nil {
		t.Fatalf("ListFeedback failed: %v", err)
	}
	if len(feedback) != 1 {
		t.Fatalf("Expected 1 feedback row, got %d", len(feedback))
	}

	f := feedback[0]
	if f.ID != id {
		t.Errorf("Expected ID %d, got %d", id, f.ID)
	}
	if f.Rating != 5 {
		t.Errorf("Expected rating 5, got %d", f.Rating)
	}
	if f.Comment != "great service" {
		t.Errorf("Expected comment 'great service', got '%s'", f.Comment)
	}
	if f.Name != "Alice" {
		t.Errorf("Expected name 'Alice', got '%s'", f.Name)
	}
	if f.Email != "alice@example.com" {
		t.Errorf("Expected email 'alice@example.com', got '%s'", f.Email)
	}
	if f.CreatedAt.IsZero() {
		t.Error("Expected a non-zero created_at timestamp")
	}
}

func TestListFeedbackNewestFirst(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	st := New(conn, testutil.TestAdminPassword)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	oldest := testutil.InsertTestFeedback(t, conn, 1, "oldest", base)
	middle := testutil.InsertTestFeedback(t, conn, 3, "middle", base.Add(time.Minute))
	newest := testutil.InsertTestFeedback(t, conn, 5, "newest", base.Add(2*time.Minute))

	feedback, err := st.ListFeedback()
	if err != nil {
		t.Fatalf("ListFeedback failed: %v", err)
	}
	if len(feedback) != 3 {
		t.Fatalf("Expected 3 feedback rows, got %d", len(feedback))
	}

	want := []int64{newest, middle, oldest}
	for i, id := range want {
		if feedback[i].ID != id {
			t.Errorf("Position %d: expected ID %d, got %d", i, id, feedback[i].ID)
		}
	}
}

func TestListFeedbackEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	st := New(conn, testutil.TestAdminPassword)

	feedback, err := st.ListFeedback()
	if err != nil {
		t.Fatalf("ListFeedback failed: %v", err)
	}
	if len(feedback) != 0 {
		t.Errorf("Expected empty list, got %d rows", len(feedback))
	}
}

func TestSettings(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	st := New(conn, testutil.TestAdminPassword)

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := st.GetSetting("no_such_key")
		if err != nil {
			t.Fatalf("GetSetting failed: %v", err)
		}
		if ok {
			t.Error("Expected missing key to report ok=false")
		}
	})

	t.Run("set and get", func(t *testing.T) {
		if err := st.SetSetting("greeting", "hello"); err != nil {
			t.Fatalf("SetSetting failed: %v", err)
		}

		value, ok, err := st.GetSetting("greeting")
		if err != nil {
			t.Fatalf("GetSetting failed: %v", err)
		}
		if !ok {
			t.Fatal("Expected key to exist")
		}
		if value != "hello" {
			t.Errorf("Expected 'hello', got '%s'", value)
		}
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		if err := st.SetSetting("greeting", "goodbye"); err != nil {
			t.Fatalf("SetSetting failed: %v", err)
		}

		value, _, err := st.GetSetting("greeting")
		if err != nil {
			t.Fatalf("GetSetting failed: %v", err)
		}
		if value != "goodbye" {
			t.Errorf("Expected 'goodbye', got '%s'", value)
		}
	})
}

func TestAdminPassword(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	st := New(conn, testutil.TestAdminPassword)

	// Seeded by SetupTestDB
	current, err := st.AdminPassword()
	if err != nil {
		t.Fatalf("AdminPassword failed: %v", err)
	}
	if current != testutil.TestAdminPassword {
		t.Errorf("Expected seeded password, got '%s'", current)
	}

	if err := st.SetAdminPassword("new-pass"); err != nil {
		t.Fatalf("SetAdminPassword failed: %v", err)
	}

	current, err = st.AdminPassword()
	if err != nil {
		t.Fatalf("AdminPassword failed: %v", err)
	}
	if current != "new-pass" {
		t.Errorf("Expected 'new-pass', got '%s'", current)
	}
}

func TestAdminPasswordFallback(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	// Remove the seeded row to simulate a pre-seeding read
	if _, err := conn.Exec(`DELETE FROM settings WHERE key = 'admin_password'`); err != nil {
		t.Fatalf("Failed to delete setting: %v", err)
	}

	st := New(conn, "fallback-default")
	current, err := st.AdminPassword()
	if err != nil {
		t.Fatalf("AdminPassword failed: %v", err)
	}
	if current != "fallback-default" {
		t.Errorf("Expected configured default, got '%s'", current)
	}
}

func TestStatsEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	st := New(conn, testutil.TestAdminPassword)

	stats, err := st.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.Total != 0 {
		t.Errorf("Expected total 0, got %d", stats.Total)
	}
	if stats.Average != 0 {
		t.Errorf("Expected average 0, got %v", stats.Average)
	}
	if len(stats.Distribution) != 0 {
		t.Errorf("Expected empty distribution, got %v", stats.Distribution)
	}
}

func TestStats(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	st := New(conn, testutil.TestAdminPassword)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, rating := range []int{5, 5, 4, 3, 2, 1} {
		testutil.InsertTestFeedback(t, conn, rating, "", base.Add(time.Duration(i)*time.Second))
	}

	stats, err := st.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.Total != 6 {
		t.Errorf("Expected total 6, got %d", stats.Total)
	}
	if stats.Positive != 3 {
		t.Errorf("Expected positive 3, got %d", stats.Positive)
	}
	if stats.Medium != 1 {
		t.Errorf("Expected medium 1, got %d", stats.Medium)
	}
	if stats.Negative != 2 {
		t.Errorf("Expected negative 2, got %d", stats.Negative)
	}
	if stats.Average != 3.33 {
		t.Errorf("Expected average 3.33, got %v", stats.Average)
	}

	wantDist := map[int]int{5: 2, 4: 1, 3: 1, 2: 1, 1: 1}
	if len(stats.Distribution) != len(wantDist) {
		t.Fatalf("Expected distribution %v, got %v", wantDist, stats.Distribution)
	}
	for rating, count := range wantDist {
		if stats.Distribution[rating] != count {
			t.Errorf("Rating %d: expected count %d, got %d", rating, count, stats.Distribution[rating])
		}
	}
}

func TestStatsOnlyPresentRatings(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	st := New(conn, testutil.TestAdminPassword)
	testutil.InsertTestFeedback(t, conn, 5, "", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	stats, err := st.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if len(stats.Distribution) != 1 {
		t.Errorf("Expected only present ratings in distribution, got %v", stats.Distribution)
	}
	if stats.Distribution[5] != 1 {
		t.Errorf("Expected one 5-star entry, got %v", stats.Distribution)
	}
	if stats.Average != 5 {
		t.Errorf("Expected average 5, got %v", stats.Average)
	}
}
