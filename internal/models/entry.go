// ABOUTME: Food and exercise entry models for daily intake/burn logging.
// ABOUTME: Entries are date-scoped; multiple entries per date sum into daily totals.
package models

import (
	"time"

	"github.com/google/uuid"
)

// FoodEntry is a single logged food item for a calendar date.
type FoodEntry struct {
	ID        uuid.UUID
	Food      string
	Calories  int
	Date      time.Time
	CreatedAt time.Time
}

// NewFoodEntry creates a food entry with a generated ID.
func NewFoodEntry(food string, calories int, date time.Time) *FoodEntry {
	return &FoodEntry{
		ID:        uuid.New(),
		Food:      food,
		Calories:  calories,
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// ExerciseEntry is a single logged activity with calories burned.
type ExerciseEntry struct {
	ID        uuid.UUID
	Activity  string
	Calories  int
	Date      time.Time
	CreatedAt time.Time
}

// NewExerciseEntry creates an exercise entry with a generated ID.
func NewExerciseEntry(activity string, calories int, date time.Time) *ExerciseEntry {
	return &ExerciseEntry{
		ID:        uuid.New(),
		Activity:  activity,
		Calories:  calories,
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// DailyTotal is a per-date calorie sum returned by range queries.
type DailyTotal struct {
	Date  time.Time
	Total int
}
