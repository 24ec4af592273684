package engine

import (
	"context"
	"time"

	"habitkeep/internal/habit"
)

// Ratio is the completed/total pair reported by CompletionRatio.
// Completed never exceeds Total; both are zero when no habits are
// scheduled for the date.
type Ratio struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// HabitsForDay returns every habit scheduled for date that already existed
// on date, whether or not it has been completed - the "for-day" selection
// the daily calendar renders and the denominator of CompletionRatio.
// The result is empty, never nil, when nothing matches.
func (t *Tracker) HabitsForDay(ctx context.Context, date time.Time) ([]habit.Entry, error) {
	entries, err := t.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	forDay := make([]habit.Entry, 0, len(entries))
	for _, e := range entries {
		if IsDueOn(e.Habit, date) && ActiveOn(e.Habit, date) {
			forDay = append(forDay, e)
		}
	}
	return forDay, nil
}

// HabitsDueOn returns the outstanding habits for date: scheduled for it and
// not yet completed on it. The result is empty, never nil, when no habits
// exist at all.
func (t *Tracker) HabitsDueOn(ctx context.Context, date time.Time) ([]habit.Entry, error) {
	forDay, err := t.HabitsForDay(ctx, date)
	if err != nil {
		return nil, err
	}

	due := make([]habit.Entry, 0, len(forDay))
	for _, e := range forDay {
		if !IsCompleteOn(e.Habit, date) {
			due = append(due, e)
		}
	}
	return due, nil
}

// CompletionRatio reports how many of the habits scheduled for date have
// been completed on it. With zero habits the ratio is (0, 0).
func (t *Tracker) CompletionRatio(ctx context.Context, date time.Time) (Ratio, error) {
	forDay, err := t.HabitsForDay(ctx, date)
	if err != nil {
		return Ratio{}, err
	}

	ratio := Ratio{Total: len(forDay)}
	for _, e := range forDay {
		if IsCompleteOn(e.Habit, date) {
			ratio.Completed++
		}
	}
	return ratio, nil
}
