// ABOUTME: Food entry CRUD and aggregate queries for SQLite storage.
// ABOUTME: Daily totals group by exact entry date; multiple entries per date sum.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutrilog/nutrilog/internal/models"
)

// CreateFoodEntry stores a new food entry.
func (d *DB) CreateFoodEntry(e *models.FoodEntry) error {
	_, err := d.db.Exec(`
		INSERT INTO foods (id, food, calories, entry_date)
		VALUES (?, ?, ?, ?)
	`, e.ID.String(), e.Food, e.Calories, models.FormatDate(e.Date))
	if err != nil {
		return fmt.Errorf("create food entry: %w", err)
	}
	return nil
}

// ListFoodEntries retrieves all food entries for a calendar date.
func (d *DB) ListFoodEntries(date string) ([]*models.FoodEntry, error) {
	rows, err := d.db.Query(`
		SELECT id, food, calories, entry_date
		FROM foods
		WHERE entry_date = ?
		ORDER BY created_at
	`, date)
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.FoodEntry
	for rows.Next() {
		e, err := scanFoodEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListAllFoodEntries retrieves every food entry, ascending by date then
// insertion order. Used by export.
func (d *DB) ListAllFoodEntries() ([]*models.FoodEntry, error) {
	rows, err := d.db.Query(`
		SELECT id, food, calories, entry_date
		FROM foods
		ORDER BY entry_date, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list all food entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.FoodEntry
	for rows.Next() {
		e, err := scanFoodEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpdateFoodEntry updates the name and calories of an entry by ID or prefix.
func (d *DB) UpdateFoodEntry(idOrPrefix, food string, calories int) error {
	id, err := d.resolveID("foods", idOrPrefix)
	if err != nil {
		return fmt.Errorf("update food entry: %w", err)
	}
	if _, err := d.db.Exec(`UPDATE foods SET food = ?, calories = ? WHERE id = ?`, food, calories, id); err != nil {
		return fmt.Errorf("update food entry: %w", err)
	}
	return nil
}

// DeleteFoodEntry removes an entry by ID or prefix.
func (d *DB) DeleteFoodEntry(idOrPrefix string) error {
	id, err := d.resolveID("foods", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete food entry: %w", err)
	}
	result, err := d.db.Exec(`DELETE FROM foods WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete food entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete food entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}
	return nil
}

// GetFoodDailyTotals returns per-date calorie sums inside an inclusive
// range, grouped by exact entry date, ascending.
func (d *DB) GetFoodDailyTotals(start, end string) ([]models.DailyTotal, error) {
	return d.dailyTotals("foods", start, end)
}

// GetEarliestFoodDate returns the earliest food entry date, or nil when
// the table is empty.
func (d *DB) GetEarliestFoodDate() (*time.Time, error) {
	return d.earliestDate("foods", "entry_date")
}

// FoodCalories pairs a distinct food name with one logged calorie value.
type FoodCalories struct {
	Food     string
	Calories int
}

// GetDistinctFoods returns every distinct (food, calories) pair ever
// logged, for local calorie suggestions.
func (d *DB) GetDistinctFoods() ([]FoodCalories, error) {
	rows, err := d.db.Query(`SELECT DISTINCT food, calories FROM foods`)
	if err != nil {
		return nil, fmt.Errorf("distinct foods: %w", err)
	}
	defer rows.Close()

	var foods []FoodCalories
	for rows.Next() {
		var f FoodCalories
		if err := rows.Scan(&f.Food, &f.Calories); err != nil {
			return nil, fmt.Errorf("scan distinct food: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// GetMostCommonFoods returns the most frequently logged food names with
// their rounded average calories, for the quick-add flow.
func (d *DB) GetMostCommonFoods(limit int) ([]FoodCalories, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := d.db.Query(`
		SELECT food, CAST(ROUND(AVG(calories)) AS INTEGER)
		FROM foods
		GROUP BY food
		ORDER BY COUNT(*) DESC, food
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("most common foods: %w", err)
	}
	defer rows.Close()

	var foods []FoodCalories
	for rows.Next() {
		var f FoodCalories
		if err := rows.Scan(&f.Food, &f.Calories); err != nil {
			return nil, fmt.Errorf("scan common food: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// dailyTotals runs the shared per-date SUM query for foods or exercise.
func (d *DB) dailyTotals(table, start, end string) ([]models.DailyTotal, error) {
	if table != "foods" && table != "exercise" {
		return nil, fmt.Errorf("daily totals: unknown table %q", table)
	}
	query := fmt.Sprintf(`
		SELECT entry_date, SUM(calories)
		FROM %s
		WHERE entry_date >= ? AND entry_date <= ?
		GROUP BY entry_date
		ORDER BY entry_date
	`, table)

	rows, err := d.db.Query(query, start, end)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	defer rows.Close()

	var totals []models.DailyTotal
	for rows.Next() {
		var dateStr string
		var total int
		if err := rows.Scan(&dateStr, &total); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		date, err := models.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("daily totals: %w", err)
		}
		totals = append(totals, models.DailyTotal{Date: date, Total: total})
	}
	return totals, rows.Err()
}

// earliestDate returns the minimum date in a column, or nil when empty.
func (d *DB) earliestDate(table, column string) (*time.Time, error) {
	query := fmt.Sprintf(`SELECT MIN(%s) FROM %s`, column, table)
	var dateStr sql.NullString
	if err := d.db.QueryRow(query).Scan(&dateStr); err != nil {
		return nil, fmt.Errorf("earliest date: %w", err)
	}
	if !dateStr.Valid {
		return nil, nil
	}
	date, err := models.ParseDate(dateStr.String)
	if err != nil {
		return nil, fmt.Errorf("earliest date: %w", err)
	}
	return &date, nil
}

func scanFoodEntry(rows *sql.Rows) (*models.FoodEntry, error) {
	var e models.FoodEntry
	var idStr, dateStr string
	if err := rows.Scan(&idStr, &e.Food, &e.Calories, &dateStr); err != nil {
		return nil, fmt.Errorf("scan food entry: %w", err)
	}
	e.ID, _ = uuid.Parse(idStr)
	date, err := models.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("scan food entry: %w", err)
	}
	e.Date = date
	return &e, nil
}
