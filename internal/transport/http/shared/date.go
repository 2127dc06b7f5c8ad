package shared

import (
	"fmt"
	"strings"
	"time"
)

// Report dates arrive as YYYY-MM-DD from the admin console upload form;
// RFC3339 is accepted for API clients that send full timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate reads a calendar date query value. An empty value parses to the
// zero time so callers can decide whether the parameter was required.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
