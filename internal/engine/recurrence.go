package engine

import (
	"time"

	"habitkeep/internal/habit"
)

// IsDueOn reports whether date is a scheduled occurrence for the habit.
//
// Both the habit's start date and the query date are normalized to UTC
// midnight; time of day never affects due-ness. A habit is due on its start
// day (day zero) and every frequency-days step after it, and never before
// its start day.
//
// An unparseable start date or a non-positive frequency means "never due"
// rather than an error: malformed historical records must not crash
// aggregate queries.
func IsDueOn(h *habit.Habit, date time.Time) bool {
	if h.Frequency < 1 {
		return false
	}
	start, ok := h.StartTime()
	if !ok {
		return false
	}

	startDay := habit.DayIndex(start)
	day := habit.DayIndex(date)
	if day < startDay {
		return false
	}
	return (day-startDay)%int64(h.Frequency) == 0
}

// ActiveOn reports whether the habit existed on the given date, i.e. its
// start day is on or before date. A missing or unparseable start date
// counts as always active, for compatibility with records written before
// start dates were tracked.
func ActiveOn(h *habit.Habit, date time.Time) bool {
	start, ok := h.StartTime()
	if !ok {
		return true
	}
	return habit.DayIndex(start) <= habit.DayIndex(date)
}
