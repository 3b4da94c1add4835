package loader

import "strings"

// headerLabels is the fixed vocabulary of recognized header labels.
// Matching is case-insensitive and exact; no trimming, no fuzzy matching.
var headerLabels = map[string]bool{
	"key combination": true,
	"key":             true,
	"combination":     true,
	"macro":           true,
}

// stripHeader drops the first row if its first field is a known header
// label. At most one header row is stripped; the check is never applied to
// subsequent rows, so a second identical row is treated as data.
func stripHeader(rows [][]string) ([][]string, bool) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return rows, false
	}
	if headerLabels[strings.ToLower(rows[0][0])] {
		return rows[1:], true
	}
	return rows, false
}
