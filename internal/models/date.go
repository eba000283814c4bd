// ABOUTME: Calendar date and clock value parsing for the nutrilog domain.
// ABOUTME: Dates are ISO yyyy-MM-dd, clocks HH:mm, durations HH:mm as total minutes.
package models

import (
	"fmt"
	"time"
)

// DateFormat is the ISO calendar date layout used everywhere dates cross
// the storage boundary. Dates carry no timezone component.
const DateFormat = "2006-01-02"

// ParseDate parses an ISO yyyy-MM-dd string into a date-only time.Time.
// Malformed input is a data-integrity error, never coerced to today.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as an ISO yyyy-MM-dd string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Today returns the current calendar date truncated to midnight.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseClock parses a zero-padded "HH:mm" time-of-day into minutes since
// midnight. Hours must be 0-23.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes-since-midnight as zero-padded "HH:mm".
// Values are normalized into the 0-24h range first.
func FormatClock(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDurationHM parses an "HH:mm" elapsed-duration string into total
// minutes (HH*60+mm). Unlike ParseClock the hour field may exceed 23,
// since this is a duration and not a wall-clock time.
func ParseDurationHM(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	if h < 0 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse duration %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatDurationHM renders total minutes as an "HH:mm" duration string.
func FormatDurationHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
