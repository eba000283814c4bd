// ABOUTME: Timeframe tokens and resolution into concrete inclusive date ranges.
// ABOUTME: Ranges end today and are clamped to the earliest known record.
package analytics

import (
	"strings"
	"time"
)

// Timeframe is a symbolic relative date-window selector.
type Timeframe string

const (
	OneWeek     Timeframe = "1w"
	TwoWeeks    Timeframe = "2w"
	OneMonth    Timeframe = "1m"
	ThreeMonths Timeframe = "3m"
	OneYear     Timeframe = "1y"
	FullHistory Timeframe = "all"
)

// AllTimeframes lists the supported selectors from narrowest to widest.
var AllTimeframes = []Timeframe{OneWeek, TwoWeeks, OneMonth, ThreeMonths, OneYear, FullHistory}

// timeframeLabels maps display labels and CLI tokens to timeframes.
var timeframeLabels = map[string]Timeframe{
	"1w": OneWeek, "1 week": OneWeek, "week": OneWeek,
	"2w": TwoWeeks, "2 weeks": TwoWeeks,
	"1m": OneMonth, "1 month": OneMonth, "month": OneMonth,
	"3m": ThreeMonths, "3 months": ThreeMonths,
	"1y": OneYear, "1 year": OneYear, "year": OneYear,
	"all": FullHistory, "full history": FullHistory, "full": FullHistory,
}

// ParseTimeframe maps a token or display label to a Timeframe. Unknown
// input falls back to OneWeek rather than erroring, matching the view's
// default selection.
func ParseTimeframe(s string) Timeframe {
	if tf, ok := timeframeLabels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return tf
	}
	return OneWeek
}

// Label returns the display label for a timeframe.
func (tf Timeframe) Label() string {
	switch tf {
	case OneWeek:
		return "1 Week"
	case TwoWeeks:
		return "2 Weeks"
	case OneMonth:
		return "1 Month"
	case ThreeMonths:
		return "3 Months"
	case OneYear:
		return "1 Year"
	case FullHistory:
		return "Full History"
	}
	return "1 Week"
}

// Resolve maps a timeframe onto a concrete inclusive [start, end] range.
// The end is always today. Fixed-width timeframes count back from today;
// month and year windows subtract calendar units then add one day so the
// window spans exactly one unit ending today. FullHistory starts at the
// earliest known record, or degenerates to [today, today] when none exists
// (callers treat that as "no data"). Whenever earliest is known, start is
// clamped so it never precedes it.
func Resolve(tf Timeframe, today time.Time, earliest *time.Time) (start, end time.Time) {
	end = today

	switch tf {
	case TwoWeeks:
		start = end.AddDate(0, 0, -13)
	case OneMonth:
		start = end.AddDate(0, -1, 0).AddDate(0, 0, 1)
	case ThreeMonths:
		start = end.AddDate(0, -3, 0).AddDate(0, 0, 1)
	case OneYear:
		start = end.AddDate(-1, 0, 0).AddDate(0, 0, 1)
	case FullHistory:
		if earliest == nil {
			start = end
		} else {
			start = *earliest
		}
	default: // OneWeek and anything unrecognized
		start = end.AddDate(0, 0, -6)
	}

	if earliest != nil && start.Before(*earliest) {
		start = *earliest
	}
	return start, end
}

// EarliestOf picks the earlier of two optional dates. Callers with
// independent record kinds (food and sleep) combine their earliest dates
// through this before resolving a timeframe.
func EarliestOf(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Before(*a):
		return b
	default:
		return a
	}
}
