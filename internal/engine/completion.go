package engine

import (
	"context"
	"log/slog"
	"time"

	"habitkeep/internal/habit"
)

// Tracker binds the scheduling logic to a repository and a clock. It owns
// the operations that mutate completion logs and the aggregate queries
// over the whole habit set.
type Tracker struct {
	repo   *habit.Repository
	clock  Clock
	logger *slog.Logger
}

// NewTracker creates a tracker. A nil clock defaults to the system clock;
// a nil logger disables diagnostic output.
func NewTracker(repo *habit.Repository, clock Clock, logger *slog.Logger) *Tracker {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{repo: repo, clock: clock, logger: logger}
}

// Repo exposes the underlying repository for CRUD pass-through.
func (t *Tracker) Repo() *habit.Repository {
	return t.repo
}

// Now returns the tracker's current instant.
func (t *Tracker) Now() time.Time {
	return t.clock.Now()
}

// IsCompleteOn reports whether any log entry falls on the same UTC calendar
// day as date. An empty log is never complete; an unparseable entry simply
// doesn't match (bulk read paths favor safe defaults over failing).
func IsCompleteOn(h *habit.Habit, date time.Time) bool {
	for _, entry := range h.Logs {
		t, ok := habit.ParseDate(entry)
		if !ok {
			continue
		}
		if habit.SameDay(t, date) {
			return true
		}
	}
	return false
}

// LogCompletion appends a completion at the current instant to the habit's
// log, recomputes the cached streak, and persists the record.
//
// Referencing an unknown id is an InvalidHabit error - exceptional, unlike
// "habit exists and was already complete today", which appends another
// entry. Same-day duplicates are permitted; IsCompleteOn dedupes by day, so
// they inflate only the log length, never the reported state.
func (t *Tracker) LogCompletion(ctx context.Context, id string) error {
	h, err := t.repo.GetByID(ctx, id)
	if err != nil {
		if habit.IsNotFound(err) {
			return habit.NewInvalidHabitError(id)
		}
		return err
	}

	now := t.clock.Now()
	h.Logs = append(h.Logs, habit.FormatDay(now))

	streak, err := CalculateStreak(h, now)
	if err != nil {
		return err
	}
	h.Streak = streak

	if err := t.repo.Put(ctx, id, h); err != nil {
		return err
	}
	t.logger.Debug("completion logged",
		slog.String("id", id),
		slog.Int("streak", streak),
		slog.Int("log_len", len(h.Logs)))
	return nil
}

// RemoveLastCompletion removes the most recently appended log entry,
// recomputes the cached streak, and persists the record.
//
// Popping an empty log is a no-op, not an error; only an unknown id is
// exceptional (InvalidHabit).
func (t *Tracker) RemoveLastCompletion(ctx context.Context, id string) error {
	h, err := t.repo.GetByID(ctx, id)
	if err != nil {
		if habit.IsNotFound(err) {
			return habit.NewInvalidHabitError(id)
		}
		return err
	}

	if len(h.Logs) > 0 {
		h.Logs = h.Logs[:len(h.Logs)-1]
	}

	streak, err := CalculateStreak(h, t.clock.Now())
	if err != nil {
		return err
	}
	h.Streak = streak

	if err := t.repo.Put(ctx, id, h); err != nil {
		return err
	}
	t.logger.Debug("completion removed",
		slog.String("id", id),
		slog.Int("streak", streak),
		slog.Int("log_len", len(h.Logs)))
	return nil
}
