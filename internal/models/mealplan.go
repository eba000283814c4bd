// ABOUTME: Meal plan weekday helpers and pantry/shopping item models.
// ABOUTME: The plan stores one free-text block per weekday.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// Weekdays lists plan columns in calendar order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// NormalizeWeekday resolves a case-insensitive day name (or unambiguous
// prefix) to its canonical column name. Returns "" when no day matches.
func NormalizeWeekday(s string) string {
	q := strings.ToLower(strings.TrimSpace(s))
	if q == "" {
		return ""
	}
	var match string
	for _, d := range Weekdays {
		if strings.HasPrefix(strings.ToLower(d), q) {
			if match != "" {
				return "" // ambiguous prefix like "t" or "s"
			}
			match = d
		}
	}
	return match
}

// PantryItem is a stocked ingredient with a weight in grams.
type PantryItem struct {
	ID     uuid.UUID
	Item   string
	Weight int
}

// ShoppingItem is one line of the shopping list.
type ShoppingItem struct {
	ID   uuid.UUID
	Item string
}
