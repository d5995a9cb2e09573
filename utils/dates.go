package utils

import (
	"time"

	"github.com/gestor-backend/errs"
)

// displayLayout is the boundary date format: "dd/mm/yy HH:MM"
const displayLayout = "02/01/06 15:04"

// FormatDateTime renders a timestamp in the boundary display format
func FormatDateTime(t time.Time) string {
	return t.Format(displayLayout)
}

// FormatDateTimePtr renders an optional timestamp, returning nil when absent
func FormatDateTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(displayLayout)
	return &s
}

// ParseDateTime parses an incoming timestamp. RFC 3339 is tried first, then
// the display layout so round-tripped values are accepted.
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(displayLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, errs.Validation("invalid date: " + value)
}
