// ABOUTME: Shared CLI helpers for dates, formatting, and body weight.
// ABOUTME: Kept free of command wiring so commands stay declarative.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nutrilog/nutrilog/internal/models"
)

// entryDate resolves an optional --date flag value, defaulting to today.
func entryDate(flag string) (time.Time, error) {
	if flag == "" {
		return models.Today(), nil
	}
	d, err := models.ParseDate(flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use yyyy-MM-dd)", flag)
	}
	return d, nil
}

// parseCalories parses a positional calorie argument.
func parseCalories(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid calories %q", s)
	}
	return n, nil
}

// bodyWeightKg picks the weight for MET estimates: the latest logged
// weight wins, then the configured fallback, then a 70 kg default.
func bodyWeightKg() float64 {
	if goals, err := repo.GetGoals(); err == nil && goals.CurrentWeight != nil {
		return *goals.CurrentWeight
	}
	if cfg != nil && cfg.BodyWeightKg > 0 {
		return cfg.BodyWeightKg
	}
	return 70
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	for len(s) < length {
		s += " "
	}
	return s
}
