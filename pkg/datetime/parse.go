// Package datetime provides date and time utility functions.
package datetime

import "time"

const (
	// DayLayout is the date format accepted by the spendings --from/--to flags.
	DayLayout = "2006-01-02"

	// LogLayout is the timestamp format written to the spending log.
	LogLayout = time.RFC3339
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDay parses a YYYY-MM-DD date string.
func ParseDay(dateStr string) (time.Time, error) {
	return time.Parse(DayLayout, dateStr)
}

// EndOfDay returns the last representable instant of t's calendar day, so an
// inclusive --to bound covers entries logged later that day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// WithinRange reports whether t falls inside [from, to] inclusive.
func WithinRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
