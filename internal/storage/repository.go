// ABOUTME: Repository interface for nutrition, sleep, and goal storage.
// ABOUTME: Defines the contract the CLI and MCP server program against.
package storage

import (
	"time"

	"github.com/nutrilog/nutrilog/internal/models"
)

// Repository defines the storage interface for tracked data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Food operations
	CreateFoodEntry(e *models.FoodEntry) error
	ListFoodEntries(date string) ([]*models.FoodEntry, error)
	ListAllFoodEntries() ([]*models.FoodEntry, error)
	UpdateFoodEntry(idOrPrefix, food string, calories int) error
	DeleteFoodEntry(idOrPrefix string) error
	GetFoodDailyTotals(start, end string) ([]models.DailyTotal, error)
	GetEarliestFoodDate() (*time.Time, error)
	GetDistinctFoods() ([]FoodCalories, error)
	GetMostCommonFoods(limit int) ([]FoodCalories, error)

	// Exercise operations
	CreateExerciseEntry(e *models.ExerciseEntry) error
	ListExerciseEntries(date string) ([]*models.ExerciseEntry, error)
	ListAllExerciseEntries() ([]*models.ExerciseEntry, error)
	UpdateExerciseEntry(idOrPrefix, activity string, calories int) error
	DeleteExerciseEntry(idOrPrefix string) error
	GetExerciseDailyTotals(start, end string) ([]models.DailyTotal, error)
	GetEarliestExerciseDate() (*time.Time, error)

	// Sleep operations
	CreateSleepNight(n *models.SleepNight) error
	ListSleepNights(start, end string) ([]*models.SleepNight, error)
	ListAllSleepNights() ([]*models.SleepNight, error)
	UpdateSleepNight(idOrPrefix string, bedtime, wakeup int) error
	DeleteSleepNight(idOrPrefix string) error
	GetEarliestSleepDate() (*time.Time, error)

	// Goal and weight operations
	SetGoal(field models.GoalField, value float64, date string) error
	GetGoals() (*models.Goals, error)
	GetWeightHistory() ([]models.WeightEntry, error)
	UpdateWeightEntry(idOrPrefix string, weight float64) error
	DeleteWeightEntry(idOrPrefix string) error

	// Meal plan operations
	GetMealPlan() (map[string]string, error)
	SetMealPlanDay(weekday, meal string) error
	SetMealPlan(plan map[string]string) error
	ClearMealPlan() error

	// Pantry and shopping list operations
	AddPantryItem(p *models.PantryItem) error
	ListPantryItems() ([]*models.PantryItem, error)
	UpdatePantryItem(idOrPrefix string, weight int) error
	DeletePantryItem(idOrPrefix string) error
	AddShoppingItem(s *models.ShoppingItem) error
	ListShoppingItems() ([]*models.ShoppingItem, error)
	DeleteShoppingItem(idOrPrefix string) error
	ClearShoppingList() (int64, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ImportJSON(data []byte) error
	ImportYAML(data []byte) error

	// Lifecycle
	Close() error
}
