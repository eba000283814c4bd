// ABOUTME: Tests for dense daily series building and gap-fill policies.
// ABOUTME: Verifies zero-fill vs no-data sentinel, degenerate ranges, purity.
package analytics

import (
	"reflect"
	"testing"
)

func TestBuildDailySeriesGapFilling(t *testing.T) {
	start := date(2024, 3, 1)
	end := date(2024, 3, 4)

	bundle := BuildDailySeries(start, end, []SeriesInput{
		{
			Label:  "intake",
			Policy: FillZero,
			Totals: map[string]float64{"2024-03-01": 1800, "2024-03-03": 2100},
		},
		{
			Label:  "sleep",
			Policy: FillNone,
			Totals: map[string]float64{"2024-03-02": 480},
		},
	})

	wantDates := []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04"}
	if !reflect.DeepEqual(bundle.Dates, wantDates) {
		t.Fatalf("Dates = %v, want %v", bundle.Dates, wantDates)
	}

	intake := bundle.Series[0]
	if !reflect.DeepEqual(intake.Values, []float64{1800, 0, 2100, 0}) {
		t.Errorf("intake values = %v", intake.Values)
	}
	for i, p := range intake.Present {
		if !p {
			t.Errorf("intake day %d: zero-fill must be a real zero, not missing", i)
		}
	}

	sleep := bundle.Series[1]
	wantPresent := []bool{false, true, false, false}
	if !reflect.DeepEqual(sleep.Present, wantPresent) {
		t.Errorf("sleep presence = %v, want %v", sleep.Present, wantPresent)
	}
	if sleep.Values[1] != 480 {
		t.Errorf("sleep value = %v, want 480", sleep.Values[1])
	}
}

func TestBuildDailySeriesSingleDay(t *testing.T) {
	d := date(2024, 3, 1)
	bundle := BuildDailySeries(d, d, []SeriesInput{{Label: "x", Policy: FillZero}})
	if bundle.Len() != 1 {
		t.Errorf("start == end must yield exactly one day, got %d", bundle.Len())
	}
}

func TestBuildDailySeriesDegenerateRange(t *testing.T) {
	bundle := BuildDailySeries(date(2024, 3, 5), date(2024, 3, 1), []SeriesInput{
		{Label: "x", Policy: FillZero},
	})
	if bundle.Len() != 0 {
		t.Errorf("start > end must yield an empty series, got %d days", bundle.Len())
	}
}

func TestBuildDailySeriesIdempotent(t *testing.T) {
	start, end := date(2024, 3, 1), date(2024, 3, 10)
	in := []SeriesInput{{
		Label:  "intake",
		Policy: FillZero,
		Totals: map[string]float64{"2024-03-04": 900},
	}}

	first := BuildDailySeries(start, end, in)
	second := BuildDailySeries(start, end, in)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeat calls over unchanged input must return identical bundles")
	}
}
