// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nutrilog/nutrilog/internal/models"
	"github.com/nutrilog/nutrilog/internal/storage"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "nutrilog-mcp-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "nutrilog.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestNewServer(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestHandleLogFood(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, out, err := server.handleLogFood(ctx, nil, logFoodInput{
		Food:     "oatmeal",
		Calories: 300,
		Date:     "2025-03-10",
	})
	if err != nil {
		t.Fatalf("handleLogFood failed: %v", err)
	}
	if len(out.ID) != 8 {
		t.Errorf("Expected 8-char ID prefix, got %q", out.ID)
	}
	if !strings.Contains(out.Message, "oatmeal") {
		t.Errorf("Message missing food name: %q", out.Message)
	}

	entries, err := db.ListFoodEntries("2025-03-10")
	if err != nil {
		t.Fatalf("ListFoodEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(entries))
	}
}

func TestHandleLogFoodBadDate(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	_, _, err := server.handleLogFood(context.Background(), nil, logFoodInput{
		Food:     "toast",
		Calories: 150,
		Date:     "10/03/2025",
	})
	if err == nil {
		t.Error("Expected error for malformed date")
	}
}

func TestHandleLogSleep(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	_, out, err := server.handleLogSleep(context.Background(), nil, logSleepInput{
		Date:    "2025-03-10",
		Bedtime: "23:00",
		Wakeup:  "07:00",
	})
	if err != nil {
		t.Fatalf("handleLogSleep failed: %v", err)
	}
	if !strings.Contains(out.Message, "08:00") {
		t.Errorf("Expected 8h duration in message, got %q", out.Message)
	}

	nights, err := db.ListSleepNights("2025-03-10", "2025-03-10")
	if err != nil {
		t.Fatalf("ListSleepNights failed: %v", err)
	}
	if len(nights) != 1 || nights[0].Duration != 480 {
		t.Errorf("Unexpected stored night: %+v", nights)
	}
}

func TestHandleListEntries(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	date := mustDate(t, "2025-03-10")
	if err := db.CreateFoodEntry(models.NewFoodEntry("eggs", 200, date)); err != nil {
		t.Fatalf("seed food: %v", err)
	}
	if err := db.CreateExerciseEntry(models.NewExerciseEntry("running", 350, date)); err != nil {
		t.Fatalf("seed exercise: %v", err)
	}

	_, result, err := server.handleListEntries(ctx, nil, listEntriesInput{Date: "2025-03-10"})
	if err != nil {
		t.Fatalf("handleListEntries failed: %v", err)
	}

	m, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("Expected map result, got %T", result)
	}
	if m["calories_intake"] != 200 || m["calories_burned"] != 350 {
		t.Errorf("Unexpected totals: %+v", m)
	}
	if m["calories_net"] != -150 {
		t.Errorf("Expected net -150, got %v", m["calories_net"])
	}
}

func TestHandleDeleteEntry(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	e := models.NewFoodEntry("toast", 150, mustDate(t, "2025-03-10"))
	if err := db.CreateFoodEntry(e); err != nil {
		t.Fatalf("seed food: %v", err)
	}

	_, _, err := server.handleDeleteEntry(ctx, nil, deleteEntryInput{
		Kind: "food",
		ID:   e.ID.String()[:8],
	})
	if err != nil {
		t.Fatalf("handleDeleteEntry failed: %v", err)
	}

	entries, _ := db.ListFoodEntries("2025-03-10")
	if len(entries) != 0 {
		t.Errorf("Expected entry deleted, found %d", len(entries))
	}

	if _, _, err := server.handleDeleteEntry(ctx, nil, deleteEntryInput{Kind: "workout", ID: "x"}); err == nil {
		t.Error("Expected error for unknown kind")
	}
}

func TestHandleGetGoalsEmpty(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	_, result, err := server.handleGetGoals(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("handleGetGoals failed: %v", err)
	}
	m := result.(map[string]any)
	if m["message"] != "No goals set." {
		t.Errorf("Expected no-goals message, got %+v", m)
	}
}

func TestHandleCalorieGraphNoData(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	_, result, err := server.handleCalorieGraph(context.Background(), nil, timeframeInput{Timeframe: "1w"})
	if err != nil {
		t.Fatalf("handleCalorieGraph failed: %v", err)
	}
	m := result.(map[string]any)
	if m["message"] != "No data for selected range." {
		t.Errorf("Expected no-data message, got %+v", m)
	}
}

func TestHandleCalorieGraph(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	today := models.Today()
	if err := db.CreateFoodEntry(models.NewFoodEntry("lunch", 600, today)); err != nil {
		t.Fatalf("seed food: %v", err)
	}
	if err := db.CreateExerciseEntry(models.NewExerciseEntry("running", 900, today)); err != nil {
		t.Fatalf("seed exercise: %v", err)
	}

	_, result, err := server.handleCalorieGraph(context.Background(), nil, timeframeInput{Timeframe: "1w"})
	if err != nil {
		t.Fatalf("handleCalorieGraph failed: %v", err)
	}
	m := result.(map[string]any)

	dates := m["dates"].([]string)
	if len(dates) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(dates))
	}
	intake := m["intake"].([]float64)
	burn := m["burn"].([]float64)
	overburn := m["overburn"].([]float64)
	last := len(dates) - 1

	if intake[last] != 600 {
		t.Errorf("Expected intake 600 today, got %v", intake[last])
	}
	// Burned 300 more than eaten: the deficit shows as overburn and the
	// three bands stack to zero.
	if overburn[last] != -300 {
		t.Errorf("Expected overburn -300, got %v", overburn[last])
	}
	if sum := intake[last] + burn[last] + overburn[last]; sum != 0 {
		t.Errorf("Expected bands to stack to 0, got %v", sum)
	}
}

func TestHandleSleepStats(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	today := models.Today()
	if err := db.CreateSleepNight(models.NewSleepNight(today, 23*60, 7*60, 8*60)); err != nil {
		t.Fatalf("seed sleep: %v", err)
	}

	_, result, err := server.handleSleepStats(context.Background(), nil, timeframeInput{Timeframe: "1w"})
	if err != nil {
		t.Fatalf("handleSleepStats failed: %v", err)
	}
	m := result.(map[string]any)

	overall := m["overall"].(map[string]any)
	if overall["avg_duration"] != "8h 0m" {
		t.Errorf("Expected 8h 0m, got %v", overall["avg_duration"])
	}
	if m["streak"] != "1 nights" {
		t.Errorf("Expected streak 1 nights, got %v", m["streak"])
	}
}

func TestTodayResource(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	if err := db.CreateFoodEntry(models.NewFoodEntry("dinner", 700, models.Today())); err != nil {
		t.Fatalf("seed food: %v", err)
	}

	result, err := server.handleTodayResource(context.Background(), nil)
	if err != nil {
		t.Fatalf("handleTodayResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("Expected 1 content, got %d", len(result.Contents))
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("Failed to parse resource JSON: %v", err)
	}
	if payload["calories_intake"].(float64) != 700 {
		t.Errorf("Expected intake 700, got %v", payload["calories_intake"])
	}
}

func TestSummaryResource(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	if err := db.SetGoal(models.GoalDailyCalories, 2000, models.FormatDate(models.Today())); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	result, err := server.handleSummaryResource(context.Background(), nil)
	if err != nil {
		t.Fatalf("handleSummaryResource failed: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("Failed to parse resource JSON: %v", err)
	}
	goals := payload["goals"].(map[string]any)
	if goals["daily_calorie_goal"].(float64) != 2000 {
		t.Errorf("Expected goal 2000, got %v", goals["daily_calorie_goal"])
	}
	sleep := payload["sleep"].(map[string]any)
	if sleep["avg_duration"] != "--h --m" {
		t.Errorf("Expected placeholder duration, got %v", sleep["avg_duration"])
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}
