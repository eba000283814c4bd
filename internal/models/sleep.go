// ABOUTME: Sleep diary night model with bedtime/wakeup clocks and duration.
// ABOUTME: Duration is elapsed minutes, stored as "HH:mm" which may exceed 24h.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SleepNight is one sleep diary entry. Bedtime and Wakeup are minutes since
// midnight; Duration is total elapsed minutes. Multiple nights may share one
// sleep date and are averaged when aggregated.
type SleepNight struct {
	ID       uuid.UUID
	Date     time.Time
	Bedtime  int
	Wakeup   int
	Duration int
}

// NewSleepNight creates a night entry with a generated ID. Duration is the
// caller-computed elapsed time between the bedtime and wakeup instants.
func NewSleepNight(date time.Time, bedtime, wakeup, duration int) *SleepNight {
	return &SleepNight{
		ID:       uuid.New(),
		Date:     date,
		Bedtime:  bedtime,
		Wakeup:   wakeup,
		Duration: duration,
	}
}

// SleepDurationBetween computes whole elapsed minutes between two instants,
// the way a diary entry's duration is derived from its bedtime and wakeup.
func SleepDurationBetween(bedtime, wakeup time.Time) int {
	return int(wakeup.Sub(bedtime) / time.Minute)
}

// SleepDurationFromClocks derives a night's duration from bedtime and
// wakeup clock minutes, treating a wakeup at or before the bedtime as
// belonging to the following day.
func SleepDurationFromClocks(bedtime, wakeup int) int {
	d := wakeup - bedtime
	if d <= 0 {
		d += 24 * 60
	}
	return d
}
