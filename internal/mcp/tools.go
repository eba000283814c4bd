// ABOUTME: MCP tool implementations for food, exercise, sleep, and goals.
// ABOUTME: Graph tools return dense per-day series over a symbolic timeframe.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nutrilog/nutrilog/internal/analytics"
	"github.com/nutrilog/nutrilog/internal/models"
)

func (s *Server) registerTools() {
	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Record a food entry with its calories",
	}, s.handleLogFood)

	// log_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_exercise",
		Description: "Record an exercise entry with calories burned",
	}, s.handleLogExercise)

	// log_sleep
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_sleep",
		Description: "Record a night of sleep with bedtime and wakeup",
	}, s.handleLogSleep)

	// list_entries
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_entries",
		Description: "List food and exercise entries for a date",
	}, s.handleListEntries)

	// delete_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a food, exercise, or sleep entry by ID or prefix",
	}, s.handleDeleteEntry)

	// get_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_goals",
		Description: "Get current weight, target weight, calorie goal, and timeframe",
	}, s.handleGetGoals)

	// calorie_graph
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calorie_graph",
		Description: "Per-day calorie intake/burn decomposition over a timeframe (1w, 2w, 1m, 3m, 1y, all)",
	}, s.handleCalorieGraph)

	// sleep_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "sleep_stats",
		Description: "Sleep statistics (weekday/weekend/overall averages, streak) over a timeframe",
	}, s.handleSleepStats)
}

// Tool input/output types

type logFoodInput struct {
	Food     string `json:"food" jsonschema:"Food name"`
	Calories int    `json:"calories" jsonschema:"Calories for this entry"`
	Date     string `json:"date,omitempty" jsonschema:"Entry date (yyyy-MM-dd); defaults to today"`
}

type logExerciseInput struct {
	Activity string `json:"activity" jsonschema:"Activity name"`
	Calories int    `json:"calories" jsonschema:"Calories burned"`
	Date     string `json:"date,omitempty" jsonschema:"Entry date (yyyy-MM-dd); defaults to today"`
}

type logSleepInput struct {
	Date    string `json:"date" jsonschema:"Night date (yyyy-MM-dd)"`
	Bedtime string `json:"bedtime" jsonschema:"Bedtime as HH:mm"`
	Wakeup  string `json:"wakeup" jsonschema:"Wakeup time as HH:mm"`
}

type entryOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type listEntriesInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (yyyy-MM-dd); defaults to today"`
}

type deleteEntryInput struct {
	Kind string `json:"kind" jsonschema:"Entry kind: food, exercise, or sleep"`
	ID   string `json:"id" jsonschema:"Entry ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type timeframeInput struct {
	Timeframe string `json:"timeframe,omitempty" jsonschema:"Symbolic timeframe: 1w, 2w, 1m, 3m, 1y, all (default 1w)"`
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, entryOutput, error) {
	date, err := entryDate(input.Date)
	if err != nil {
		return nil, entryOutput{}, err
	}

	e := models.NewFoodEntry(input.Food, input.Calories, date)
	if err := s.repo.CreateFoodEntry(e); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to create food entry: %w", err)
	}

	return nil, entryOutput{
		ID:      e.ID.String()[:8],
		Message: fmt.Sprintf("Logged %s: %d kcal on %s (ID: %s)", e.Food, e.Calories, models.FormatDate(e.Date), e.ID.String()[:8]),
	}, nil
}

func (s *Server) handleLogExercise(ctx context.Context, req *mcp.CallToolRequest, input logExerciseInput) (*mcp.CallToolResult, entryOutput, error) {
	date, err := entryDate(input.Date)
	if err != nil {
		return nil, entryOutput{}, err
	}

	e := models.NewExerciseEntry(input.Activity, input.Calories, date)
	if err := s.repo.CreateExerciseEntry(e); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to create exercise entry: %w", err)
	}

	return nil, entryOutput{
		ID:      e.ID.String()[:8],
		Message: fmt.Sprintf("Logged %s: %d kcal burned on %s (ID: %s)", e.Activity, e.Calories, models.FormatDate(e.Date), e.ID.String()[:8]),
	}, nil
}

func (s *Server) handleLogSleep(ctx context.Context, req *mcp.CallToolRequest, input logSleepInput) (*mcp.CallToolResult, entryOutput, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("invalid date: %w", err)
	}
	bedtime, err := models.ParseClock(input.Bedtime)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("invalid bedtime: %w", err)
	}
	wakeup, err := models.ParseClock(input.Wakeup)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("invalid wakeup: %w", err)
	}

	duration := models.SleepDurationFromClocks(bedtime, wakeup)
	n := models.NewSleepNight(date, bedtime, wakeup, duration)
	if err := s.repo.CreateSleepNight(n); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to create sleep night: %w", err)
	}

	return nil, entryOutput{
		ID:      n.ID.String()[:8],
		Message: fmt.Sprintf("Logged sleep for %s: %s (ID: %s)", input.Date, models.FormatDurationHM(duration), n.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input listEntriesInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = models.FormatDate(models.Today())
	} else if _, err := models.ParseDate(date); err != nil {
		return nil, nil, fmt.Errorf("invalid date: %w", err)
	}

	foods, err := s.repo.ListFoodEntries(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list food entries: %w", err)
	}
	exercise, err := s.repo.ListExerciseEntries(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercise entries: %w", err)
	}

	intake, burned := 0, 0
	for _, e := range foods {
		intake += e.Calories
	}
	for _, e := range exercise {
		burned += e.Calories
	}

	return nil, map[string]any{
		"date":            date,
		"foods":           entryList(foods, func(e *models.FoodEntry) (string, string, int) { return e.ID.String()[:8], e.Food, e.Calories }),
		"exercise":        entryList(exercise, func(e *models.ExerciseEntry) (string, string, int) { return e.ID.String()[:8], e.Activity, e.Calories }),
		"calories_intake": intake,
		"calories_burned": burned,
		"calories_net":    intake - burned,
	}, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input deleteEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	var err error
	switch input.Kind {
	case "food":
		err = s.repo.DeleteFoodEntry(input.ID)
	case "exercise":
		err = s.repo.DeleteExerciseEntry(input.ID)
	case "sleep":
		err = s.repo.DeleteSleepNight(input.ID)
	default:
		return nil, simpleOutput{}, fmt.Errorf("unknown entry kind %q (want food, exercise, or sleep)", input.Kind)
	}
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s entry: %s", input.Kind, input.ID),
	}, nil
}

func (s *Server) handleGetGoals(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	goals, err := s.repo.GetGoals()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get goals: %w", err)
	}

	result := map[string]any{}
	if goals.CurrentWeight != nil {
		result["current_weight_kg"] = *goals.CurrentWeight
	}
	if goals.TargetWeight != nil {
		result["target_weight_kg"] = *goals.TargetWeight
	}
	if goals.DailyCalorieGoal != nil {
		result["daily_calorie_goal"] = *goals.DailyCalorieGoal
	}
	if goals.LossTimeframe != nil {
		result["loss_timeframe_months"] = *goals.LossTimeframe
	}
	if delta, ok := goals.WeightDelta(); ok {
		result["weight_to_lose_kg"] = delta
	}
	if len(result) == 0 {
		return nil, map[string]any{"message": "No goals set."}, nil
	}
	return nil, result, nil
}

func (s *Server) handleCalorieGraph(ctx context.Context, req *mcp.CallToolRequest, input timeframeInput) (*mcp.CallToolResult, any, error) {
	tf := analytics.ParseTimeframe(input.Timeframe)

	earliestFood, err := s.repo.GetEarliestFoodDate()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve range: %w", err)
	}
	earliestExercise, err := s.repo.GetEarliestExerciseDate()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve range: %w", err)
	}
	earliest := analytics.EarliestOf(earliestFood, earliestExercise)

	start, end := analytics.Resolve(tf, models.Today(), earliest)
	startStr, endStr := models.FormatDate(start), models.FormatDate(end)

	foodTotals, err := s.repo.GetFoodDailyTotals(startStr, endStr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load food totals: %w", err)
	}
	exerciseTotals, err := s.repo.GetExerciseDailyTotals(startStr, endStr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load exercise totals: %w", err)
	}

	bundle := analytics.BuildDailySeries(start, end, []analytics.SeriesInput{
		{Label: "intake", Policy: analytics.FillZero, Totals: analytics.TotalsMap(foodTotals)},
		{Label: "burn", Policy: analytics.FillZero, Totals: analytics.TotalsMap(exerciseTotals)},
	})
	if bundle.Len() == 0 || (len(foodTotals) == 0 && len(exerciseTotals) == 0) {
		return nil, map[string]any{"message": "No data for selected range.", "timeframe": string(tf)}, nil
	}

	decomp := analytics.DecomposeCalories(bundle.Series[0].Values, bundle.Series[1].Values)

	result := map[string]any{
		"timeframe": string(tf),
		"start":     startStr,
		"end":       endStr,
		"dates":     bundle.Dates,
		"intake":    decomp.Intake,
		"burn":      decomp.Burn,
		"overburn":  decomp.Overburn,
		"net":       decomp.Net,
	}
	goals, err := s.repo.GetGoals()
	if err == nil && goals.DailyCalorieGoal != nil {
		result["daily_calorie_goal"] = *goals.DailyCalorieGoal
	}
	return nil, result, nil
}

func (s *Server) handleSleepStats(ctx context.Context, req *mcp.CallToolRequest, input timeframeInput) (*mcp.CallToolResult, any, error) {
	tf := analytics.ParseTimeframe(input.Timeframe)

	earliest, err := s.repo.GetEarliestSleepDate()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve range: %w", err)
	}
	start, end := analytics.Resolve(tf, models.Today(), earliest)

	rows, err := s.repo.ListSleepNights(models.FormatDate(start), models.FormatDate(end))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sleep nights: %w", err)
	}

	nights := make([]analytics.Night, 0, len(rows))
	for _, r := range rows {
		nights = append(nights, analytics.Night{
			Date:     r.Date,
			Bedtime:  r.Bedtime,
			Wakeup:   r.Wakeup,
			Duration: r.Duration,
		})
	}
	stats := analytics.ComputeSleepStats(nights)

	if !stats.HasData() {
		return nil, map[string]any{"message": "No sleep data for selected range.", "timeframe": string(tf)}, nil
	}

	bucket := func(b analytics.BucketStats) map[string]any {
		return map[string]any{
			"nights":       b.Nights,
			"avg_bedtime":  b.BedtimeDisplay(),
			"avg_wakeup":   b.WakeupDisplay(),
			"avg_duration": b.DurationDisplay(),
		}
	}
	return nil, map[string]any{
		"timeframe":      string(tf),
		"weekday":        bucket(stats.Weekday),
		"weekend":        bucket(stats.Weekend),
		"overall":        bucket(stats.Overall),
		"streak":         stats.StreakDisplay(),
		"percent_of_day": stats.PercentOfDayDisplay(),
	}, nil
}

// entryDate parses an optional entry date, defaulting to today.
func entryDate(s string) (time.Time, error) {
	if s == "" {
		return models.Today(), nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %w", err)
	}
	return d, nil
}

type listedEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

func entryList[T any](entries []T, fields func(T) (string, string, int)) []listedEntry {
	out := make([]listedEntry, 0, len(entries))
	for _, e := range entries {
		id, name, cal := fields(e)
		out = append(out, listedEntry{ID: id, Name: name, Calories: cal})
	}
	return out
}
