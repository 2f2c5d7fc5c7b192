package importer

import (
	"strings"
)

// Record is one spreadsheet row: cell values keyed by the exact header text.
// RowNumber is the spreadsheet position (header is row 1, so the first data
// row is 2), which is what error listings reference.
type Record struct {
	RowNumber int
	Values    map[string]string
}

// Get returns the first non-empty trimmed value among the given header
// variants. Variants are matched as case-sensitive literals, in order, to
// stay bit-compatible with the roster export column contract.
func (r Record) Get(keys ...string) string {
	for _, key := range keys {
		if value, ok := r.Values[key]; ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
