// ABOUTME: Tests for food and exercise entry storage.
// ABOUTME: Covers CRUD, prefix resolution, and daily total aggregation.
package storage

import (
	"strings"
	"testing"

	"github.com/nutrilog/nutrilog/internal/models"
)

func TestCreateAndListFoodEntries(t *testing.T) {
	db := setupTestDB(t)

	date := mustDate(t, "2025-03-10")
	e1 := models.NewFoodEntry("oatmeal", 300, date)
	e2 := models.NewFoodEntry("banana", 105, date)
	if err := db.CreateFoodEntry(e1); err != nil {
		t.Fatalf("CreateFoodEntry failed: %v", err)
	}
	if err := db.CreateFoodEntry(e2); err != nil {
		t.Fatalf("CreateFoodEntry failed: %v", err)
	}

	entries, err := db.ListFoodEntries("2025-03-10")
	if err != nil {
		t.Fatalf("ListFoodEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Food != "oatmeal" || entries[0].Calories != 300 {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}

	other, err := db.ListFoodEntries("2025-03-11")
	if err != nil {
		t.Fatalf("ListFoodEntries failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("Expected no entries on empty date, got %d", len(other))
	}
}

func TestUpdateFoodEntryByPrefix(t *testing.T) {
	db := setupTestDB(t)

	e := models.NewFoodEntry("toast", 150, mustDate(t, "2025-03-10"))
	if err := db.CreateFoodEntry(e); err != nil {
		t.Fatalf("CreateFoodEntry failed: %v", err)
	}

	prefix := e.ID.String()[:8]
	if err := db.UpdateFoodEntry(prefix, "toast with butter", 220); err != nil {
		t.Fatalf("UpdateFoodEntry failed: %v", err)
	}

	entries, err := db.ListFoodEntries("2025-03-10")
	if err != nil {
		t.Fatalf("ListFoodEntries failed: %v", err)
	}
	if entries[0].Food != "toast with butter" || entries[0].Calories != 220 {
		t.Errorf("Update did not stick: %+v", entries[0])
	}
}

func TestDeleteFoodEntryNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := db.DeleteFoodEntry("deadbeef")
	if err == nil {
		t.Fatal("Expected error deleting missing entry")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not-found error, got: %v", err)
	}
}

func TestGetFoodDailyTotals(t *testing.T) {
	db := setupTestDB(t)

	// Two entries on one date sum; a date outside the range is excluded.
	for _, e := range []*models.FoodEntry{
		models.NewFoodEntry("eggs", 200, mustDate(t, "2025-03-10")),
		models.NewFoodEntry("rice", 350, mustDate(t, "2025-03-10")),
		models.NewFoodEntry("soup", 180, mustDate(t, "2025-03-12")),
		models.NewFoodEntry("cake", 500, mustDate(t, "2025-04-01")),
	} {
		if err := db.CreateFoodEntry(e); err != nil {
			t.Fatalf("CreateFoodEntry failed: %v", err)
		}
	}

	totals, err := db.GetFoodDailyTotals("2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("GetFoodDailyTotals failed: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("Expected 2 totals, got %d", len(totals))
	}
	if models.FormatDate(totals[0].Date) != "2025-03-10" || totals[0].Total != 550 {
		t.Errorf("Unexpected first total: %+v", totals[0])
	}
	if models.FormatDate(totals[1].Date) != "2025-03-12" || totals[1].Total != 180 {
		t.Errorf("Unexpected second total: %+v", totals[1])
	}
}

func TestGetEarliestFoodDate(t *testing.T) {
	db := setupTestDB(t)

	earliest, err := db.GetEarliestFoodDate()
	if err != nil {
		t.Fatalf("GetEarliestFoodDate failed: %v", err)
	}
	if earliest != nil {
		t.Errorf("Expected nil earliest on empty table, got %v", earliest)
	}

	for _, d := range []string{"2025-03-12", "2025-02-01", "2025-03-10"} {
		e := models.NewFoodEntry("food", 100, mustDate(t, d))
		if err := db.CreateFoodEntry(e); err != nil {
			t.Fatalf("CreateFoodEntry failed: %v", err)
		}
	}

	earliest, err = db.GetEarliestFoodDate()
	if err != nil {
		t.Fatalf("GetEarliestFoodDate failed: %v", err)
	}
	if earliest == nil || models.FormatDate(*earliest) != "2025-02-01" {
		t.Errorf("Expected earliest 2025-02-01, got %v", earliest)
	}
}

func TestGetMostCommonFoods(t *testing.T) {
	db := setupTestDB(t)

	date := mustDate(t, "2025-03-10")
	for i := 0; i < 3; i++ {
		if err := db.CreateFoodEntry(models.NewFoodEntry("coffee", 5, date)); err != nil {
			t.Fatalf("CreateFoodEntry failed: %v", err)
		}
	}
	if err := db.CreateFoodEntry(models.NewFoodEntry("salad", 250, date)); err != nil {
		t.Fatalf("CreateFoodEntry failed: %v", err)
	}

	common, err := db.GetMostCommonFoods(1)
	if err != nil {
		t.Fatalf("GetMostCommonFoods failed: %v", err)
	}
	if len(common) != 1 || common[0].Food != "coffee" {
		t.Errorf("Expected coffee as most common, got %+v", common)
	}
}

func TestExerciseDailyTotals(t *testing.T) {
	db := setupTestDB(t)

	for _, e := range []*models.ExerciseEntry{
		models.NewExerciseEntry("running", 400, mustDate(t, "2025-03-10")),
		models.NewExerciseEntry("cycling", 300, mustDate(t, "2025-03-10")),
	} {
		if err := db.CreateExerciseEntry(e); err != nil {
			t.Fatalf("CreateExerciseEntry failed: %v", err)
		}
	}

	totals, err := db.GetExerciseDailyTotals("2025-03-10", "2025-03-10")
	if err != nil {
		t.Fatalf("GetExerciseDailyTotals failed: %v", err)
	}
	if len(totals) != 1 || totals[0].Total != 700 {
		t.Errorf("Expected one total of 700, got %+v", totals)
	}
}

func TestResolveIDAmbiguousPrefix(t *testing.T) {
	db := setupTestDB(t)

	date := mustDate(t, "2025-03-10")
	// Force two IDs sharing a one-character prefix. Sixteen tries covers
	// every hex digit, so a collision is guaranteed by the seventeenth.
	var prefix string
	seen := map[string]bool{}
	for i := 0; i < 17; i++ {
		e := models.NewFoodEntry("food", 100, date)
		if err := db.CreateFoodEntry(e); err != nil {
			t.Fatalf("CreateFoodEntry failed: %v", err)
		}
		p := e.ID.String()[:1]
		if seen[p] {
			prefix = p
			break
		}
		seen[p] = true
	}
	if prefix == "" {
		t.Fatal("No colliding prefix found")
	}

	err := db.DeleteFoodEntry(prefix)
	if err == nil {
		t.Fatal("Expected ambiguity error")
	}
	if !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("Expected ambiguous error, got: %v", err)
	}
}
