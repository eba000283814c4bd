// ABOUTME: MCP resource implementations for daily and summary views.
// ABOUTME: Provides nutrilog://today and nutrilog://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nutrilog/nutrilog/internal/analytics"
	"github.com/nutrilog/nutrilog/internal/models"
)

func (s *Server) registerResources() {
	// nutrilog://today - everything logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrilog://today",
		Name:        "Today's Log",
		Description: "Food, exercise, and net calories for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// nutrilog://summary - goals plus a week of calorie and sleep stats
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrilog://summary",
		Name:        "Weekly Summary",
		Description: "Goals, last week's calorie balance, and sleep statistics",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.FormatDate(models.Today())

	foods, err := s.repo.ListFoodEntries(today)
	if err != nil {
		return nil, fmt.Errorf("failed to list food entries: %w", err)
	}
	exercise, err := s.repo.ListExerciseEntries(today)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise entries: %w", err)
	}

	intake, burned := 0, 0
	for _, e := range foods {
		intake += e.Calories
	}
	for _, e := range exercise {
		burned += e.Calories
	}

	result := map[string]any{
		"date":            today,
		"foods":           entryList(foods, func(e *models.FoodEntry) (string, string, int) { return e.ID.String()[:8], e.Food, e.Calories }),
		"exercise":        entryList(exercise, func(e *models.ExerciseEntry) (string, string, int) { return e.ID.String()[:8], e.Activity, e.Calories }),
		"calories_intake": intake,
		"calories_burned": burned,
		"calories_net":    intake - burned,
	}

	return marshalResource("nutrilog://today", result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.Today()

	goals, err := s.repo.GetGoals()
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}

	earliestFood, err := s.repo.GetEarliestFoodDate()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve range: %w", err)
	}
	earliestExercise, err := s.repo.GetEarliestExerciseDate()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve range: %w", err)
	}
	earliest := analytics.EarliestOf(earliestFood, earliestExercise)

	start, end := analytics.Resolve(analytics.OneWeek, today, earliest)
	startStr, endStr := models.FormatDate(start), models.FormatDate(end)

	foodTotals, err := s.repo.GetFoodDailyTotals(startStr, endStr)
	if err != nil {
		return nil, fmt.Errorf("failed to load food totals: %w", err)
	}
	exerciseTotals, err := s.repo.GetExerciseDailyTotals(startStr, endStr)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise totals: %w", err)
	}

	bundle := analytics.BuildDailySeries(start, end, []analytics.SeriesInput{
		{Label: "intake", Policy: analytics.FillZero, Totals: analytics.TotalsMap(foodTotals)},
		{Label: "burn", Policy: analytics.FillZero, Totals: analytics.TotalsMap(exerciseTotals)},
	})

	var totalIntake, totalBurn float64
	for i := 0; i < bundle.Len(); i++ {
		totalIntake += bundle.Series[0].Values[i]
		totalBurn += bundle.Series[1].Values[i]
	}

	sleepRows, err := s.repo.ListSleepNights(startStr, endStr)
	if err != nil {
		return nil, fmt.Errorf("failed to list sleep nights: %w", err)
	}
	nights := make([]analytics.Night, 0, len(sleepRows))
	for _, r := range sleepRows {
		nights = append(nights, analytics.Night{
			Date:     r.Date,
			Bedtime:  r.Bedtime,
			Wakeup:   r.Wakeup,
			Duration: r.Duration,
		})
	}
	stats := analytics.ComputeSleepStats(nights)

	result := map[string]any{
		"week": map[string]any{
			"start":           startStr,
			"end":             endStr,
			"calories_intake": totalIntake,
			"calories_burned": totalBurn,
			"calories_net":    totalIntake - totalBurn,
		},
		"sleep": map[string]any{
			"avg_duration":   stats.Overall.DurationDisplay(),
			"avg_bedtime":    stats.Overall.BedtimeDisplay(),
			"avg_wakeup":     stats.Overall.WakeupDisplay(),
			"streak":         stats.StreakDisplay(),
			"percent_of_day": stats.PercentOfDayDisplay(),
		},
	}
	goalsOut := map[string]any{}
	if goals.CurrentWeight != nil {
		goalsOut["current_weight_kg"] = *goals.CurrentWeight
	}
	if goals.TargetWeight != nil {
		goalsOut["target_weight_kg"] = *goals.TargetWeight
	}
	if goals.DailyCalorieGoal != nil {
		goalsOut["daily_calorie_goal"] = *goals.DailyCalorieGoal
	}
	result["goals"] = goalsOut

	return marshalResource("nutrilog://summary", result)
}

func marshalResource(uri string, result any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
