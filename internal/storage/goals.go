// ABOUTME: Goal and weight storage over an append-only sparse goals log.
// ABOUTME: Reads take the most recent non-null value per field independently.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/nutrilog/nutrilog/internal/models"
)

// SetGoal appends a sparse goals row carrying exactly one field. Earlier
// rows are never rewritten; reads resolve the latest value per field.
func (d *DB) SetGoal(field models.GoalField, value float64, date string) error {
	column, err := goalColumn(field)
	if err != nil {
		return fmt.Errorf("set goal: %w", err)
	}
	query := fmt.Sprintf(`
		INSERT INTO goals (id, %s, updated_date)
		VALUES (?, ?, ?)
	`, column)
	if _, err := d.db.Exec(query, uuid.New().String(), value, date); err != nil {
		return fmt.Errorf("set goal: %w", err)
	}
	return nil
}

// GetGoals resolves each goal field to its most recent non-null value.
// Fields never set stay nil.
func (d *DB) GetGoals() (*models.Goals, error) {
	g := &models.Goals{}
	fields := []struct {
		field models.GoalField
		dest  **float64
	}{
		{models.GoalCurrentWeight, &g.CurrentWeight},
		{models.GoalTargetWeight, &g.TargetWeight},
		{models.GoalDailyCalories, &g.DailyCalorieGoal},
		{models.GoalLossTimeframe, &g.LossTimeframe},
	}
	for _, f := range fields {
		v, err := d.latestGoalValue(f.field)
		if err != nil {
			return nil, err
		}
		*f.dest = v
	}
	return g, nil
}

// GetWeightHistory returns current-weight rows ascending by date, one
// point per logged row.
func (d *DB) GetWeightHistory() ([]models.WeightEntry, error) {
	rows, err := d.db.Query(`
		SELECT id, current_weight, updated_date
		FROM goals
		WHERE current_weight IS NOT NULL
		ORDER BY updated_date, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("weight history: %w", err)
	}
	defer rows.Close()

	var history []models.WeightEntry
	for rows.Next() {
		var idStr, dateStr string
		var weight float64
		if err := rows.Scan(&idStr, &weight, &dateStr); err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		date, err := models.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("weight history: %w", err)
		}
		entry := models.WeightEntry{Date: date, Weight: weight}
		entry.ID, _ = uuid.Parse(idStr)
		history = append(history, entry)
	}
	return history, rows.Err()
}

// UpdateWeightEntry rewrites the weight on one history row by ID or prefix.
func (d *DB) UpdateWeightEntry(idOrPrefix string, weight float64) error {
	id, err := d.resolveID("goals", idOrPrefix)
	if err != nil {
		return fmt.Errorf("update weight entry: %w", err)
	}
	result, err := d.db.Exec(`
		UPDATE goals SET current_weight = ?
		WHERE id = ? AND current_weight IS NOT NULL
	`, weight, id)
	if err != nil {
		return fmt.Errorf("update weight entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update weight entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not a weight entry: %s", idOrPrefix)
	}
	return nil
}

// DeleteWeightEntry removes one weight history row by ID or prefix.
func (d *DB) DeleteWeightEntry(idOrPrefix string) error {
	id, err := d.resolveID("goals", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete weight entry: %w", err)
	}
	result, err := d.db.Exec(`
		DELETE FROM goals WHERE id = ? AND current_weight IS NOT NULL
	`, id)
	if err != nil {
		return fmt.Errorf("delete weight entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete weight entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not a weight entry: %s", idOrPrefix)
	}
	return nil
}

// latestGoalValue returns the newest non-null value for one field, by
// updated_date then insertion order, or nil when never set.
func (d *DB) latestGoalValue(field models.GoalField) (*float64, error) {
	column, err := goalColumn(field)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	query := fmt.Sprintf(`
		SELECT %s FROM goals
		WHERE %s IS NOT NULL
		ORDER BY updated_date DESC, rowid DESC
		LIMIT 1
	`, column, column)

	var value float64
	err = d.db.QueryRow(query).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &value, nil
}

// goalColumn maps a goal field to its column, rejecting anything else so
// field names never reach SQL unchecked.
func goalColumn(field models.GoalField) (string, error) {
	switch field {
	case models.GoalCurrentWeight:
		return "current_weight", nil
	case models.GoalTargetWeight:
		return "target_weight", nil
	case models.GoalDailyCalories:
		return "daily_calorie_goal", nil
	case models.GoalLossTimeframe:
		return "weight_loss_timeframe", nil
	}
	return "", fmt.Errorf("unknown goal field %q", field)
}
