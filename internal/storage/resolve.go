// ABOUTME: Shared ID-prefix resolution for uuid-keyed tables.
// ABOUTME: Lets CLI users reference records by an 8-char prefix.
package storage

import (
	"fmt"
	"strings"
)

// idTables names every uuid-keyed table prefix resolution may touch.
// The table name is interpolated into SQL, so it must come from this set.
var idTables = map[string]bool{
	"foods":         true,
	"exercise":      true,
	"sleep_diary":   true,
	"goals":         true,
	"pantry":        true,
	"shopping_list": true,
}

// resolveID finds the full ID in a table from a prefix.
func (d *DB) resolveID(table, idOrPrefix string) (string, error) {
	if !idTables[table] {
		return "", fmt.Errorf("resolve id: unknown table %q", table)
	}

	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	query := fmt.Sprintf(`SELECT id FROM %s WHERE id LIKE ? || '%%'`, table)
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan id: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate ids: %w", err)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}
