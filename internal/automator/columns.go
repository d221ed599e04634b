package automator

import (
	"strings"

	"github.com/MohamedMaroufMD/MAUDE-Binary-Automator/internal/types"
)

// SanitizeValueName derives a column-safe name from a raw category value:
// spaces become underscores, commas and parentheses are dropped, slashes
// become underscores. A leading "Binary_" marker is stripped first so a
// pre-tagged value does not double up.
func SanitizeValueName(value string) string {
	name := strings.TrimPrefix(value, "Binary_")
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, ",", "")
	name = strings.ReplaceAll(name, "(", "")
	name = strings.ReplaceAll(name, ")", "")
	name = strings.ReplaceAll(name, "/", "_")
	return name
}

// BinaryColumn is one derived 0/1 indicator column, ready to append.
type BinaryColumn struct {
	Name string
	// Values holds one entry per data row: 1 where any source column of the
	// category equals the value after trimming, else 0.
	Values []int
}

// BuildBinaryColumns synthesizes indicator columns for every distinct value
// of every category. A derived name already present among the headers is
// skipped, which makes repeat runs produce nothing new. When two distinct
// values sanitize to the same name, the first in sorted order keeps the
// column and later ones are skipped.
func BuildBinaryColumns(data *types.SheetData) []BinaryColumn {
	existing := make(map[string]struct{}, len(data.Headers))
	for _, h := range data.Headers {
		existing[h] = struct{}{}
	}

	var columns []BinaryColumn
	for _, cat := range Categories {
		cols := cat.MatchColumns(data.Headers)
		for _, value := range DistinctValues(data.Rows, cols) {
			name := cat.Prefix + SanitizeValueName(value)
			if _, ok := existing[name]; ok {
				continue
			}
			existing[name] = struct{}{}

			vals := make([]int, len(data.Rows))
			for i, row := range data.Rows {
				for _, col := range cols {
					if col < len(row) && strings.TrimSpace(row[col]) == value {
						vals[i] = 1
						break
					}
				}
			}
			columns = append(columns, BinaryColumn{Name: name, Values: vals})
		}
	}
	return columns
}
