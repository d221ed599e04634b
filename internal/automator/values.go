package automator

import (
	"sort"
	"strings"
)

// Category identifies one group of MAUDE source columns and the prefix its
// derived binary columns carry. Header matching is a case-sensitive
// substring check with no normalization.
type Category struct {
	Marker string
	Prefix string
}

// Categories lists the three recognized column groups in their processing
// order: device problems, patient problems, patient outcomes.
var Categories = []Category{
	{Marker: "Device Problem", Prefix: "Device_"},
	{Marker: "Patient Problem", Prefix: "Patient_"},
	{Marker: "Patient Outcome", Prefix: "Outcome_"},
}

// MatchColumns returns the indices of headers containing the category marker.
func (c Category) MatchColumns(headers []string) []int {
	var cols []int
	for i, h := range headers {
		if strings.Contains(h, c.Marker) {
			cols = append(cols, i)
		}
	}
	return cols
}

// DistinctValues collects the sorted set of distinct non-blank values found
// in the given columns across all rows. Values are trimmed of outer
// whitespace only; case and internal spacing are preserved.
func DistinctValues(rows [][]string, cols []int) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for _, col := range cols {
			if col >= len(row) {
				continue
			}
			val := strings.TrimSpace(row[col])
			if val != "" {
				seen[val] = struct{}{}
			}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// ExistingBinaryColumns returns headers that already look like derived
// indicator columns: they carry a category prefix but are not source columns
// themselves.
func ExistingBinaryColumns(headers []string) []string {
	var existing []string
	for _, h := range headers {
		if !hasCategoryPrefix(h) {
			continue
		}
		isSource := false
		for _, cat := range Categories {
			if strings.Contains(h, cat.Marker) {
				isSource = true
				break
			}
		}
		if !isSource {
			existing = append(existing, h)
		}
	}
	return existing
}

func hasCategoryPrefix(header string) bool {
	for _, cat := range Categories {
		if strings.HasPrefix(header, cat.Prefix) {
			return true
		}
	}
	return false
}
