package sheet

import (
	"strconv"
	"strings"
)

// Row is one spreadsheet row, raw header to cell value.
type Row map[string]string

// ResolveField returns the cell value for the first candidate header that
// matches one of the row's headers. Matching is case-insensitive and ignores
// spaces and underscores on both sides, so "FHR_ID", "fhr id" and "FHRID"
// all resolve the same column.
func ResolveField(row Row, candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		want := normalizeHeader(candidate)
		if want == "" {
			continue
		}
		for header, value := range row {
			if normalizeHeader(header) == want {
				return value, true
			}
		}
	}
	return "", false
}

// TextField resolves a field and trims it; absent fields become "".
func TextField(row Row, candidates ...string) string {
	value, ok := ResolveField(row, candidates...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// NumberField resolves a field and coerces it to a float. Missing or
// non-numeric values coerce to 0 rather than failing the row.
func NumberField(row Row, candidates ...string) float64 {
	value, ok := ResolveField(row, candidates...)
	if !ok {
		return 0
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}

// OptionalNumberField is NumberField with a presence flag, for callers that
// treat a sheet-provided value as authoritative over a computed fallback.
func OptionalNumberField(row Row, candidates ...string) (float64, bool) {
	value, ok := ResolveField(row, candidates...)
	if !ok {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func normalizeHeader(header string) string {
	normalized := strings.ToLower(strings.TrimSpace(header))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "_", "")
	return normalized
}
