// ABOUTME: Sleep statistics over a resolved range: bucket averages, streak, percent-of-day.
// ABOUTME: Pure function over nightly records; empty input renders placeholders, not zeros.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/nutrilog/nutrilog/internal/models"
)

const (
	// Sufficient sleep is 7-9 hours inclusive.
	sufficientMinMinutes = 7 * 60
	sufficientMaxMinutes = 9 * 60

	// Bedtimes before 06:00 are treated as belonging to the next day when
	// averaged, so a 23:30/00:30 pair averages near midnight instead of noon.
	// Averages of times spread across the whole clock remain linear and can
	// still misbehave; that quirk is kept deliberately.
	bedtimeWrapHour = 6
)

// Night is one sleep diary record restricted to the resolved date range.
// Bedtime and Wakeup are minutes since midnight, Duration elapsed minutes.
type Night struct {
	Date     time.Time
	Bedtime  int
	Wakeup   int
	Duration int
}

// BucketStats aggregates one partition of nights (weekday, weekend, or all).
type BucketStats struct {
	Nights          int
	BedtimeMinutes  float64
	WakeupMinutes   float64
	DurationMinutes float64
}

// BedtimeDisplay renders the average bedtime as "HH:mm", or "--:--" when
// the bucket is empty.
func (b BucketStats) BedtimeDisplay() string {
	if b.Nights == 0 {
		return "--:--"
	}
	return models.FormatClock(int(b.BedtimeMinutes))
}

// WakeupDisplay renders the average wakeup as "HH:mm", or "--:--".
func (b BucketStats) WakeupDisplay() string {
	if b.Nights == 0 {
		return "--:--"
	}
	return models.FormatClock(int(b.WakeupMinutes))
}

// DurationDisplay renders the average duration as "{h}h {m}m" using
// truncating division, or "--h --m" when the bucket is empty.
func (b BucketStats) DurationDisplay() string {
	if b.Nights == 0 {
		return "--h --m"
	}
	mins := int(b.DurationMinutes)
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

// SleepStats is the full statistics bundle for a resolved range.
type SleepStats struct {
	Weekday BucketStats
	Weekend BucketStats
	Overall BucketStats
	Streak  int
}

// HasData reports whether any night fell inside the range.
func (s *SleepStats) HasData() bool { return s.Overall.Nights > 0 }

// StreakDisplay renders the sufficiency streak, or "-- nights".
func (s *SleepStats) StreakDisplay() string {
	if !s.HasData() {
		return "-- nights"
	}
	return fmt.Sprintf("%d nights", s.Streak)
}

// PercentOfDayDisplay renders the overall average duration as a share of a
// 24h day, one decimal place, or "--%".
func (s *SleepStats) PercentOfDayDisplay() string {
	if !s.HasData() {
		return "--%"
	}
	return fmt.Sprintf("%.1f%%", s.Overall.DurationMinutes/(24*60)*100)
}

// ComputeSleepStats computes the statistics bundle from nights inside an
// already-resolved range. Nights sharing a calendar date are first averaged
// into one representative night for that date. Averages are linear over
// minutes (no circular mean); see bedtimeWrapHour for the one adjustment.
func ComputeSleepStats(nights []Night) *SleepStats {
	stats := &SleepStats{}
	if len(nights) == 0 {
		return stats
	}

	reps := collapseByDate(nights)

	var weekday, weekend, overall []Night
	for _, n := range reps {
		overall = append(overall, n)
		switch n.Date.Weekday() {
		case time.Saturday, time.Sunday:
			weekend = append(weekend, n)
		default:
			weekday = append(weekday, n)
		}
	}

	stats.Weekday = bucketAverages(weekday)
	stats.Weekend = bucketAverages(weekend)
	stats.Overall = bucketAverages(overall)
	stats.Streak = sufficiencyStreak(reps)
	return stats
}

// collapseByDate pre-averages nights sharing a sleep date and returns one
// representative night per date in ascending date order.
func collapseByDate(nights []Night) []Night {
	byDate := make(map[string][]Night)
	var keys []string
	for _, n := range nights {
		key := models.FormatDate(n.Date)
		if _, seen := byDate[key]; !seen {
			keys = append(keys, key)
		}
		byDate[key] = append(byDate[key], n)
	}
	sort.Strings(keys)

	reps := make([]Night, 0, len(keys))
	for _, key := range keys {
		group := byDate[key]
		if len(group) == 1 {
			reps = append(reps, group[0])
			continue
		}
		avg := bucketAverages(group)
		reps = append(reps, Night{
			Date:     group[0].Date,
			Bedtime:  int(avg.BedtimeMinutes) % (24 * 60),
			Wakeup:   int(avg.WakeupMinutes),
			Duration: int(avg.DurationMinutes),
		})
	}
	return reps
}

// bucketAverages computes linear minute averages over a partition.
func bucketAverages(nights []Night) BucketStats {
	b := BucketStats{Nights: len(nights)}
	if len(nights) == 0 {
		return b
	}

	var bedtimeSum, wakeupSum, durationSum float64
	for _, n := range nights {
		bedtime := n.Bedtime
		if bedtime < bedtimeWrapHour*60 {
			bedtime += 24 * 60
		}
		bedtimeSum += float64(bedtime)
		wakeupSum += float64(n.Wakeup)
		durationSum += float64(n.Duration)
	}

	count := float64(len(nights))
	b.BedtimeMinutes = wrapClock(bedtimeSum / count)
	b.WakeupMinutes = wakeupSum / count
	b.DurationMinutes = durationSum / count
	return b
}

func wrapClock(minutes float64) float64 {
	for minutes >= 24*60 {
		minutes -= 24 * 60
	}
	return minutes
}

// sufficiencyStreak counts consecutive sufficient nights walking backward
// from the most recent representative night. A night is sufficient when its
// duration is between 7 and 9 hours inclusive. An insufficient most recent
// night means a streak of zero.
func sufficiencyStreak(reps []Night) int {
	streak := 0
	for i := len(reps) - 1; i >= 0; i-- {
		d := reps[i].Duration
		if d < sufficientMinMinutes || d > sufficientMaxMinutes {
			break
		}
		streak++
	}
	return streak
}
