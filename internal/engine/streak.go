package engine

import (
	"time"

	"habitkeep/internal/habit"
)

// CalculateStreak derives the current consecutive-completion count from a
// habit's log and frequency, evaluated as of now.
//
// Contract (two branches):
//
//   - Fewer than two log entries: the streak is the log length. A single
//     completion is itself a streak of 1.
//   - Otherwise: walk backward from now's day index in steps of the
//     frequency, counting while each expected day appears in the log. The
//     walk stops at the first expected day with no completion.
//
// Log entries are deduplicated by calendar day before the walk, so
// completing twice on one day never inflates the count. When now's own day
// has no completion the walk stops immediately and the streak is 0 - a
// streak is only "current" if it reaches the present. (The boundary
// behavior for logs whose gaps don't divide by the frequency is
// approximate by design; this rule is the one consistent reading.)
//
// An unparseable log entry is a MalformedLog error. Garbage timestamps must
// not silently pass for valid completions.
func CalculateStreak(h *habit.Habit, now time.Time) (int, error) {
	if len(h.Logs) < 2 {
		// Still parse what is there; a malformed single entry is as
		// corrupt as a malformed tenth entry.
		if _, err := h.LogDays(); err != nil {
			return 0, err
		}
		return len(h.Logs), nil
	}

	days, err := h.LogDays()
	if err != nil {
		return 0, err
	}

	freq := int64(h.Frequency)
	if freq < 1 {
		freq = 1
	}

	streak := 0
	for expected := habit.DayIndex(now); days[expected]; expected -= freq {
		streak++
	}
	return streak, nil
}
