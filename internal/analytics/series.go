// ABOUTME: Dense gap-filled daily series built from sparse per-date aggregates.
// ABOUTME: Distinguishes real zeros (totals) from unknown days (measurements).
package analytics

import (
	"time"

	"github.com/nutrilog/nutrilog/internal/models"
)

// FillPolicy controls what a day absent from an input mapping resolves to.
type FillPolicy int

const (
	// FillZero marks absent days as a real zero total. A day with no food
	// logged genuinely ate zero logged calories.
	FillZero FillPolicy = iota
	// FillNone marks absent days as unknown. A night with no diary entry
	// is not "slept zero hours".
	FillNone
)

// SeriesInput is one sparse (ISO date -> value) aggregate to densify.
type SeriesInput struct {
	Label  string
	Policy FillPolicy
	Totals map[string]float64
}

// Series is one dense value sequence aligned to the bundle's dates.
// Present[i] is false only for FillNone inputs on days with no data.
type Series struct {
	Label   string
	Values  []float64
	Present []bool
}

// SeriesBundle is a dense per-calendar-day view over a date range.
type SeriesBundle struct {
	Dates  []string
	Series []Series
}

// Len returns the number of days in the bundle.
func (b *SeriesBundle) Len() int { return len(b.Dates) }

// BuildDailySeries produces one entry per calendar day from start to end
// inclusive, ascending, with one aligned value sequence per input. A
// degenerate range (start after end) yields an empty bundle, never an error:
// downstream views render a "no data" state for empty bundles. The function
// is pure; repeat calls over unchanged inputs give identical output.
func BuildDailySeries(start, end time.Time, inputs []SeriesInput) *SeriesBundle {
	bundle := &SeriesBundle{Series: make([]Series, len(inputs))}
	for i, in := range inputs {
		bundle.Series[i].Label = in.Label
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := models.FormatDate(day)
		bundle.Dates = append(bundle.Dates, key)
		for i, in := range inputs {
			v, ok := in.Totals[key]
			switch {
			case ok:
				bundle.Series[i].Values = append(bundle.Series[i].Values, v)
				bundle.Series[i].Present = append(bundle.Series[i].Present, true)
			case in.Policy == FillZero:
				bundle.Series[i].Values = append(bundle.Series[i].Values, 0)
				bundle.Series[i].Present = append(bundle.Series[i].Present, true)
			default:
				bundle.Series[i].Values = append(bundle.Series[i].Values, 0)
				bundle.Series[i].Present = append(bundle.Series[i].Present, false)
			}
		}
	}
	return bundle
}

// TotalsMap converts a daily-totals query result into the sparse mapping
// BuildDailySeries consumes.
func TotalsMap(totals []models.DailyTotal) map[string]float64 {
	m := make(map[string]float64, len(totals))
	for _, dt := range totals {
		m[models.FormatDate(dt.Date)] += float64(dt.Total)
	}
	return m
}
