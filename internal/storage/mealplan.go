// ABOUTME: Weekly meal plan storage as a single row of weekday text columns.
// ABOUTME: Weekday names are validated before interpolation into SQL.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nutrilog/nutrilog/internal/models"
)

// GetMealPlan returns the plan text per weekday. Missing row or unset
// days read as empty strings.
func (d *DB) GetMealPlan() (map[string]string, error) {
	plan := make(map[string]string, len(models.Weekdays))
	for _, day := range models.Weekdays {
		plan[day] = ""
	}

	columns := strings.Join(models.Weekdays, ", ")
	row := d.db.QueryRow(fmt.Sprintf(`SELECT %s FROM meal_plan WHERE id = 1`, columns))

	dests := make([]any, len(models.Weekdays))
	values := make([]string, len(models.Weekdays))
	for i := range values {
		dests[i] = &values[i]
	}
	if err := row.Scan(dests...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return plan, nil
		}
		return nil, fmt.Errorf("get meal plan: %w", err)
	}
	for i, day := range models.Weekdays {
		plan[day] = values[i]
	}
	return plan, nil
}

// SetMealPlanDay writes one weekday's plan text, creating the plan row
// on first use.
func (d *DB) SetMealPlanDay(weekday, meal string) error {
	day := models.NormalizeWeekday(weekday)
	if day == "" {
		return fmt.Errorf("set meal plan: unknown weekday %q", weekday)
	}
	query := fmt.Sprintf(`
		INSERT INTO meal_plan (id, %s) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET %s = excluded.%s
	`, day, day, day)
	if _, err := d.db.Exec(query, meal); err != nil {
		return fmt.Errorf("set meal plan: %w", err)
	}
	return nil
}

// SetMealPlan replaces the whole week at once. Days absent from the map
// are cleared.
func (d *DB) SetMealPlan(plan map[string]string) error {
	columns := strings.Join(models.Weekdays, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(models.Weekdays)), ", ")
	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO meal_plan (id, %s) VALUES (1, %s)
	`, columns, placeholders)

	args := make([]any, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		args = append(args, plan[day])
	}
	if _, err := d.db.Exec(query, args...); err != nil {
		return fmt.Errorf("set meal plan: %w", err)
	}
	return nil
}

// ClearMealPlan removes the plan row entirely.
func (d *DB) ClearMealPlan() error {
	if _, err := d.db.Exec(`DELETE FROM meal_plan WHERE id = 1`); err != nil {
		return fmt.Errorf("clear meal plan: %w", err)
	}
	return nil
}
