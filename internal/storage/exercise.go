// ABOUTME: Exercise entry CRUD and aggregate queries for SQLite storage.
// ABOUTME: Mirrors the foods table shape; calories count as burn, not intake.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutrilog/nutrilog/internal/models"
)

// CreateExerciseEntry stores a new exercise entry.
func (d *DB) CreateExerciseEntry(e *models.ExerciseEntry) error {
	_, err := d.db.Exec(`
		INSERT INTO exercise (id, activity, calories, entry_date)
		VALUES (?, ?, ?, ?)
	`, e.ID.String(), e.Activity, e.Calories, models.FormatDate(e.Date))
	if err != nil {
		return fmt.Errorf("create exercise entry: %w", err)
	}
	return nil
}

// ListExerciseEntries retrieves all exercise entries for a calendar date.
func (d *DB) ListExerciseEntries(date string) ([]*models.ExerciseEntry, error) {
	rows, err := d.db.Query(`
		SELECT id, activity, calories, entry_date
		FROM exercise
		WHERE entry_date = ?
		ORDER BY created_at
	`, date)
	if err != nil {
		return nil, fmt.Errorf("list exercise entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.ExerciseEntry
	for rows.Next() {
		e, err := scanExerciseEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListAllExerciseEntries retrieves every exercise entry, ascending by
// date then insertion order. Used by export.
func (d *DB) ListAllExerciseEntries() ([]*models.ExerciseEntry, error) {
	rows, err := d.db.Query(`
		SELECT id, activity, calories, entry_date
		FROM exercise
		ORDER BY entry_date, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list all exercise entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.ExerciseEntry
	for rows.Next() {
		e, err := scanExerciseEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpdateExerciseEntry updates the activity and calories of an entry by
// ID or prefix.
func (d *DB) UpdateExerciseEntry(idOrPrefix, activity string, calories int) error {
	id, err := d.resolveID("exercise", idOrPrefix)
	if err != nil {
		return fmt.Errorf("update exercise entry: %w", err)
	}
	if _, err := d.db.Exec(`UPDATE exercise SET activity = ?, calories = ? WHERE id = ?`, activity, calories, id); err != nil {
		return fmt.Errorf("update exercise entry: %w", err)
	}
	return nil
}

// DeleteExerciseEntry removes an entry by ID or prefix.
func (d *DB) DeleteExerciseEntry(idOrPrefix string) error {
	id, err := d.resolveID("exercise", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete exercise entry: %w", err)
	}
	result, err := d.db.Exec(`DELETE FROM exercise WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete exercise entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete exercise entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}
	return nil
}

// GetExerciseDailyTotals returns per-date burn sums inside an inclusive
// range, ascending.
func (d *DB) GetExerciseDailyTotals(start, end string) ([]models.DailyTotal, error) {
	return d.dailyTotals("exercise", start, end)
}

// GetEarliestExerciseDate returns the earliest exercise entry date, or
// nil when the table is empty.
func (d *DB) GetEarliestExerciseDate() (*time.Time, error) {
	return d.earliestDate("exercise", "entry_date")
}

func scanExerciseEntry(rows *sql.Rows) (*models.ExerciseEntry, error) {
	var e models.ExerciseEntry
	var idStr, dateStr string
	if err := rows.Scan(&idStr, &e.Activity, &e.Calories, &dateStr); err != nil {
		return nil, fmt.Errorf("scan exercise entry: %w", err)
	}
	e.ID, _ = uuid.Parse(idStr)
	date, err := models.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("scan exercise entry: %w", err)
	}
	e.Date = date
	return &e, nil
}
