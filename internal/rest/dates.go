package rest

import (
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate parses a date from its textual request representation. Both
// date-only values ("2024-01-01") and full timestamps (RFC 3339) are accepted.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", value)
}
