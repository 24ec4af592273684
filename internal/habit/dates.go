package habit

import (
	"time"
)

// CanonicalDayLayout is the layout all persisted dates are reformatted to.
// It matches the day-granularity strings the original records were written
// with, so revived records round-trip byte-identically.
const CanonicalDayLayout = "Mon Jan 02 2006"

// acceptedLayouts are the formats ParseDate will try, in order. The canonical
// layout comes first because it is what well-formed records contain.
var acceptedLayouts = []string{
	CanonicalDayLayout,
	time.RFC3339,
	"2006-01-02",
	time.RFC1123,
	"Mon Jan 02 2006 15:04:05",
}

// ParseDate parses a persisted date string against the accepted layouts.
// Returns false if no layout matches.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDay renders a time in the canonical day layout.
func FormatDay(t time.Time) string {
	return t.UTC().Format(CanonicalDayLayout)
}

// Midnight truncates a time to the start of its UTC calendar day.
// All due-ness and completion checks operate at this granularity; time of
// day is never significant.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayIndex returns the number of whole days between the Unix epoch and the
// start of t's UTC calendar day. Recurrence and streak arithmetic work on
// these indices rather than on time.Time values so that frequency steps are
// exact integer subtraction.
func DayIndex(t time.Time) int64 {
	return Midnight(t).Unix() / 86400
}

// SameDay reports whether two times fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayIndex(a) == DayIndex(b)
}
