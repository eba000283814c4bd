// ABOUTME: MET activity lookup from the Compendium of Physical Activities.
// ABOUTME: Embedded CSV; substring search first, fuzzy match as fallback.
package met

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

//go:embed assets/met.csv
var metCSV []byte

// Activity is one Compendium row.
type Activity struct {
	Code        string
	Category    string
	Description string
	MET         float64
}

var (
	loadOnce   sync.Once
	activities []Activity
	loadErr    error
)

// Load parses the embedded CSV once and caches the result. Rows with a
// malformed MET value are skipped rather than failing the whole load.
func Load() ([]Activity, error) {
	loadOnce.Do(func() {
		reader := csv.NewReader(bytes.NewReader(metCSV))
		header, err := reader.Read()
		if err != nil {
			loadErr = fmt.Errorf("read met csv header: %w", err)
			return
		}

		col := map[string]int{}
		for i, name := range header {
			col[name] = i
		}
		// The source CSV spells the category column "Actvitiy".
		catIdx, ok := col["Actvitiy"]
		if !ok {
			catIdx = col["Activity"]
		}
		codeIdx := col["Code"]
		descIdx := col["Description"]
		metIdx := col["MET"]

		for {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				loadErr = fmt.Errorf("read met csv: %w", err)
				return
			}
			metVal, err := strconv.ParseFloat(strings.TrimSpace(row[metIdx]), 64)
			if err != nil {
				continue
			}
			desc := strings.TrimSpace(row[descIdx])
			if desc == "" {
				continue
			}
			activities = append(activities, Activity{
				Code:        strings.TrimSpace(row[codeIdx]),
				Category:    strings.TrimSpace(row[catIdx]),
				Description: desc,
				MET:         metVal,
			})
		}
	})
	return activities, loadErr
}

// Search finds activities matching a query. Substring matches on the
// description or category win; when none exist, fuzzy matching over the
// combined text takes over. Results are capped at limit.
func Search(query string, limit int) ([]Activity, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(all) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	var substr []Activity
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Description), query) ||
			strings.Contains(strings.ToLower(a.Category), query) {
			substr = append(substr, a)
		}
	}
	if len(substr) > 0 {
		// Descriptions starting with the query rank first.
		sort.SliceStable(substr, func(i, j int) bool {
			di := strings.ToLower(substr[i].Description)
			dj := strings.ToLower(substr[j].Description)
			pi := strings.HasPrefix(di, query)
			pj := strings.HasPrefix(dj, query)
			if pi != pj {
				return pi
			}
			return di < dj
		})
		if len(substr) > limit {
			substr = substr[:limit]
		}
		return substr, nil
	}

	names := make([]string, len(all))
	for i, a := range all {
		names[i] = strings.ToLower(a.Description + " " + a.Category)
	}
	ranks := fuzzy.RankFindFold(query, names)
	sort.Sort(ranks)

	var matches []Activity
	seen := map[string]bool{}
	for _, r := range ranks {
		a := all[r.OriginalIndex]
		key := a.Description
		if seen[key] {
			continue
		}
		seen[key] = true
		matches = append(matches, a)
		if len(matches) == limit {
			break
		}
	}
	return matches, nil
}

// EstimateCalories returns the kcal burned for an activity: MET times
// body weight in kg times duration in hours.
func EstimateCalories(metValue, weightKg, hours float64) int {
	return int(metValue*weightKg*hours + 0.5)
}
