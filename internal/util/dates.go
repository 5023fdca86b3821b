package util

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

const TimeLayout = "15:04:05"

// FilterWindow maps a list filter value onto a [start, end) window of
// ISO dates. The window boundaries are bound as query parameters; the
// filter text itself never reaches SQL. Unknown values behave like
// "today", matching the default filter.
func FilterWindow(filter string, now time.Time) (start, end string) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch strings.TrimSpace(filter) {
	case "yesterday":
		return today.AddDate(0, 0, -1).Format(DateLayout), today.Format(DateLayout)
	case "year":
		jan1 := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return jan1.Format(DateLayout), jan1.AddDate(1, 0, 0).Format(DateLayout)
	default:
		return today.Format(DateLayout), today.AddDate(0, 0, 1).Format(DateLayout)
	}
}

// DateString returns t's date part in the storage format.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// TimeString returns t's clock part in the storage format.
func TimeString(t time.Time) string {
	return t.Format(TimeLayout)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
