// ABOUTME: Export and import of the full data set as JSON or YAML.
// ABOUTME: Dates serialize as yyyy-MM-dd, clock fields as HH:mm text.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutrilog/nutrilog/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the full export document.
type ExportData struct {
	Version    string            `json:"version" yaml:"version"`
	ExportedAt time.Time         `json:"exported_at" yaml:"exported_at"`
	Tool       string            `json:"tool" yaml:"tool"`
	Foods      []exportEntry     `json:"foods" yaml:"foods"`
	Exercise   []exportEntry     `json:"exercise" yaml:"exercise"`
	Sleep      []exportSleep     `json:"sleep" yaml:"sleep"`
	Weights    []exportWeight    `json:"weights" yaml:"weights"`
	Goals      exportGoals       `json:"goals" yaml:"goals"`
	MealPlan   map[string]string `json:"meal_plan,omitempty" yaml:"meal_plan,omitempty"`
	Pantry     []exportPantry    `json:"pantry,omitempty" yaml:"pantry,omitempty"`
	Shopping   []string          `json:"shopping_list,omitempty" yaml:"shopping_list,omitempty"`
}

type exportEntry struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Calories int    `json:"calories" yaml:"calories"`
	Date     string `json:"date" yaml:"date"`
}

type exportSleep struct {
	ID       string `json:"id" yaml:"id"`
	Date     string `json:"date" yaml:"date"`
	Bedtime  string `json:"bedtime" yaml:"bedtime"`
	Wakeup   string `json:"wakeup" yaml:"wakeup"`
	Duration string `json:"duration" yaml:"duration"`
}

type exportWeight struct {
	Weight float64 `json:"weight" yaml:"weight"`
	Date   string  `json:"date" yaml:"date"`
}

type exportGoals struct {
	TargetWeight     *float64 `json:"target_weight,omitempty" yaml:"target_weight,omitempty"`
	DailyCalorieGoal *float64 `json:"daily_calorie_goal,omitempty" yaml:"daily_calorie_goal,omitempty"`
	LossTimeframe    *float64 `json:"loss_timeframe_months,omitempty" yaml:"loss_timeframe_months,omitempty"`
}

type exportPantry struct {
	Item   string `json:"item" yaml:"item"`
	Weight int    `json:"weight" yaml:"weight"`
}

// GetAllData collects every table into an export document.
func (d *DB) GetAllData() (*ExportData, error) {
	foods, err := d.ListAllFoodEntries()
	if err != nil {
		return nil, fmt.Errorf("export foods: %w", err)
	}
	exercise, err := d.ListAllExerciseEntries()
	if err != nil {
		return nil, fmt.Errorf("export exercise: %w", err)
	}
	sleep, err := d.ListAllSleepNights()
	if err != nil {
		return nil, fmt.Errorf("export sleep: %w", err)
	}
	weights, err := d.GetWeightHistory()
	if err != nil {
		return nil, fmt.Errorf("export weights: %w", err)
	}
	goals, err := d.GetGoals()
	if err != nil {
		return nil, fmt.Errorf("export goals: %w", err)
	}
	plan, err := d.GetMealPlan()
	if err != nil {
		return nil, fmt.Errorf("export meal plan: %w", err)
	}
	pantry, err := d.ListPantryItems()
	if err != nil {
		return nil, fmt.Errorf("export pantry: %w", err)
	}
	shopping, err := d.ListShoppingItems()
	if err != nil {
		return nil, fmt.Errorf("export shopping: %w", err)
	}

	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "nutrilog",
		Foods:      make([]exportEntry, 0, len(foods)),
		Exercise:   make([]exportEntry, 0, len(exercise)),
		Sleep:      make([]exportSleep, 0, len(sleep)),
		Weights:    make([]exportWeight, 0, len(weights)),
		Goals: exportGoals{
			TargetWeight:     goals.TargetWeight,
			DailyCalorieGoal: goals.DailyCalorieGoal,
			LossTimeframe:    goals.LossTimeframe,
		},
	}
	for _, e := range foods {
		data.Foods = append(data.Foods, exportEntry{
			ID:       e.ID.String(),
			Name:     e.Food,
			Calories: e.Calories,
			Date:     models.FormatDate(e.Date),
		})
	}
	for _, e := range exercise {
		data.Exercise = append(data.Exercise, exportEntry{
			ID:       e.ID.String(),
			Name:     e.Activity,
			Calories: e.Calories,
			Date:     models.FormatDate(e.Date),
		})
	}
	for _, n := range sleep {
		data.Sleep = append(data.Sleep, exportSleep{
			ID:       n.ID.String(),
			Date:     models.FormatDate(n.Date),
			Bedtime:  models.FormatClock(n.Bedtime),
			Wakeup:   models.FormatClock(n.Wakeup),
			Duration: models.FormatDurationHM(n.Duration),
		})
	}
	for _, w := range weights {
		data.Weights = append(data.Weights, exportWeight{
			Weight: w.Weight,
			Date:   models.FormatDate(w.Date),
		})
	}

	hasPlan := false
	for _, text := range plan {
		if text != "" {
			hasPlan = true
			break
		}
	}
	if hasPlan {
		data.MealPlan = plan
	}
	for _, p := range pantry {
		data.Pantry = append(data.Pantry, exportPantry{Item: p.Item, Weight: p.Weight})
	}
	for _, s := range shopping {
		data.Shopping = append(data.Shopping, s.Item)
	}
	return data, nil
}

// ExportJSON exports all data as indented JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportData loads an export document back into the database. Entries
// keep their exported IDs when present so re-import is stable.
func (d *DB) ImportData(data *ExportData) error {
	for _, e := range data.Foods {
		date, err := models.ParseDate(e.Date)
		if err != nil {
			return fmt.Errorf("import food %q: %w", e.Name, err)
		}
		entry := models.NewFoodEntry(e.Name, e.Calories, date)
		if id, err := uuid.Parse(e.ID); err == nil {
			entry.ID = id
		}
		_, err = d.db.Exec(`
		INSERT OR REPLACE INTO foods (id, food, calories, entry_date)
		VALUES (?, ?, ?, ?)`,
			entry.ID.String(), entry.Food, entry.Calories, models.FormatDate(entry.Date))
		if err != nil {
			return fmt.Errorf("import food: %w", err)
		}
	}
	for _, e := range data.Exercise {
		date, err := models.ParseDate(e.Date)
		if err != nil {
			return fmt.Errorf("import exercise %q: %w", e.Name, err)
		}
		entry := models.NewExerciseEntry(e.Name, e.Calories, date)
		if id, err := uuid.Parse(e.ID); err == nil {
			entry.ID = id
		}
		_, err = d.db.Exec(`
		INSERT OR REPLACE INTO exercise (id, activity, calories, entry_date)
		VALUES (?, ?, ?, ?)`,
			entry.ID.String(), entry.Activity, entry.Calories, models.FormatDate(entry.Date))
		if err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}
	for _, s := range data.Sleep {
		date, err := models.ParseDate(s.Date)
		if err != nil {
			return fmt.Errorf("import sleep: %w", err)
		}
		bedtime, err := models.ParseClock(s.Bedtime)
		if err != nil {
			return fmt.Errorf("import sleep: %w", err)
		}
		wakeup, err := models.ParseClock(s.Wakeup)
		if err != nil {
			return fmt.Errorf("import sleep: %w", err)
		}
		duration, err := models.ParseDurationHM(s.Duration)
		if err != nil {
			return fmt.Errorf("import sleep: %w", err)
		}
		night := models.NewSleepNight(date, bedtime, wakeup, duration)
		if id, err := uuid.Parse(s.ID); err == nil {
			night.ID = id
		}
		_, err = d.db.Exec(`
		INSERT OR REPLACE INTO sleep_diary (id, sleep_date, bedtime, wakeup, duration)
		VALUES (?, ?, ?, ?, ?)`,
			night.ID.String(), models.FormatDate(night.Date),
			models.FormatClock(night.Bedtime), models.FormatClock(night.Wakeup),
			models.FormatDurationHM(night.Duration))
		if err != nil {
			return fmt.Errorf("import sleep: %w", err)
		}
	}
	for _, w := range data.Weights {
		if err := d.SetGoal(models.GoalCurrentWeight, w.Weight, w.Date); err != nil {
			return fmt.Errorf("import weight: %w", err)
		}
	}
	today := models.FormatDate(time.Now())
	if data.Goals.TargetWeight != nil {
		if err := d.SetGoal(models.GoalTargetWeight, *data.Goals.TargetWeight, today); err != nil {
			return fmt.Errorf("import goals: %w", err)
		}
	}
	if data.Goals.DailyCalorieGoal != nil {
		if err := d.SetGoal(models.GoalDailyCalories, *data.Goals.DailyCalorieGoal, today); err != nil {
			return fmt.Errorf("import goals: %w", err)
		}
	}
	if data.Goals.LossTimeframe != nil {
		if err := d.SetGoal(models.GoalLossTimeframe, *data.Goals.LossTimeframe, today); err != nil {
			return fmt.Errorf("import goals: %w", err)
		}
	}
	if len(data.MealPlan) > 0 {
		if err := d.SetMealPlan(data.MealPlan); err != nil {
			return fmt.Errorf("import meal plan: %w", err)
		}
	}
	for _, p := range data.Pantry {
		item := &models.PantryItem{ID: uuid.New(), Item: p.Item, Weight: p.Weight}
		if err := d.AddPantryItem(item); err != nil {
			return fmt.Errorf("import pantry: %w", err)
		}
	}
	for _, s := range data.Shopping {
		item := &models.ShoppingItem{ID: uuid.New(), Item: s}
		if err := d.AddShoppingItem(item); err != nil {
			return fmt.Errorf("import shopping: %w", err)
		}
	}
	return nil
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

// ImportYAML imports data from YAML bytes.
func (d *DB) ImportYAML(data []byte) error {
	var exportData ExportData
	if err := yaml.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal YAML: %w", err)
	}
	return d.ImportData(&exportData)
}
