// ABOUTME: Sleep diary CRUD for SQLite storage.
// ABOUTME: Clock times and durations persist as HH:mm text; durations may exceed 24h.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutrilog/nutrilog/internal/models"
)

// CreateSleepNight stores a new sleep diary row. Multiple rows may share
// a date; analytics averages them per night.
func (d *DB) CreateSleepNight(n *models.SleepNight) error {
	_, err := d.db.Exec(`
		INSERT INTO sleep_diary (id, sleep_date, bedtime, wakeup, duration)
		VALUES (?, ?, ?, ?, ?)
	`, n.ID.String(),
		models.FormatDate(n.Date),
		models.FormatClock(n.Bedtime),
		models.FormatClock(n.Wakeup),
		models.FormatDurationHM(n.Duration))
	if err != nil {
		return fmt.Errorf("create sleep night: %w", err)
	}
	return nil
}

// ListSleepNights retrieves sleep rows inside an inclusive date range,
// ascending by date.
func (d *DB) ListSleepNights(start, end string) ([]*models.SleepNight, error) {
	rows, err := d.db.Query(`
		SELECT id, sleep_date, bedtime, wakeup, duration
		FROM sleep_diary
		WHERE sleep_date >= ? AND sleep_date <= ?
		ORDER BY sleep_date
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sleep nights: %w", err)
	}
	defer rows.Close()

	var nights []*models.SleepNight
	for rows.Next() {
		n, err := scanSleepNight(rows)
		if err != nil {
			return nil, err
		}
		nights = append(nights, n)
	}
	return nights, rows.Err()
}

// ListAllSleepNights retrieves every sleep row, ascending by date. Used
// by export.
func (d *DB) ListAllSleepNights() ([]*models.SleepNight, error) {
	rows, err := d.db.Query(`
		SELECT id, sleep_date, bedtime, wakeup, duration
		FROM sleep_diary
		ORDER BY sleep_date, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("list all sleep nights: %w", err)
	}
	defer rows.Close()

	var nights []*models.SleepNight
	for rows.Next() {
		n, err := scanSleepNight(rows)
		if err != nil {
			return nil, err
		}
		nights = append(nights, n)
	}
	return nights, rows.Err()
}

// UpdateSleepNight corrects a night's clocks by ID or prefix. Duration is
// recomputed from the new bedtime and wakeup.
func (d *DB) UpdateSleepNight(idOrPrefix string, bedtime, wakeup int) error {
	id, err := d.resolveID("sleep_diary", idOrPrefix)
	if err != nil {
		return fmt.Errorf("update sleep night: %w", err)
	}
	duration := models.SleepDurationFromClocks(bedtime, wakeup)
	result, err := d.db.Exec(`
		UPDATE sleep_diary SET bedtime = ?, wakeup = ?, duration = ? WHERE id = ?
	`, models.FormatClock(bedtime), models.FormatClock(wakeup),
		models.FormatDurationHM(duration), id)
	if err != nil {
		return fmt.Errorf("update sleep night: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update sleep night: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}
	return nil
}

// DeleteSleepNight removes a sleep row by ID or prefix.
func (d *DB) DeleteSleepNight(idOrPrefix string) error {
	id, err := d.resolveID("sleep_diary", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete sleep night: %w", err)
	}
	result, err := d.db.Exec(`DELETE FROM sleep_diary WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete sleep night: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete sleep night: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}
	return nil
}

// GetEarliestSleepDate returns the earliest sleep diary date, or nil
// when the table is empty.
func (d *DB) GetEarliestSleepDate() (*time.Time, error) {
	return d.earliestDate("sleep_diary", "sleep_date")
}

func scanSleepNight(rows *sql.Rows) (*models.SleepNight, error) {
	var n models.SleepNight
	var idStr, dateStr, bedtime, wakeup, duration string
	if err := rows.Scan(&idStr, &dateStr, &bedtime, &wakeup, &duration); err != nil {
		return nil, fmt.Errorf("scan sleep night: %w", err)
	}
	n.ID, _ = uuid.Parse(idStr)
	date, err := models.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("scan sleep night: %w", err)
	}
	n.Date = date
	if n.Bedtime, err = models.ParseClock(bedtime); err != nil {
		return nil, fmt.Errorf("scan sleep night: %w", err)
	}
	if n.Wakeup, err = models.ParseClock(wakeup); err != nil {
		return nil, fmt.Errorf("scan sleep night: %w", err)
	}
	if n.Duration, err = models.ParseDurationHM(duration); err != nil {
		return nil, fmt.Errorf("scan sleep night: %w", err)
	}
	return &n, nil
}
