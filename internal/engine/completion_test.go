package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitkeep/internal/engine"
	"habitkeep/internal/habit"
	"habitkeep/internal/storage"
	"habitkeep/internal/testutil"
)

func newTestTracker(now time.Time) (*engine.Tracker, *testutil.FixedClock) {
	clock := testutil.NewFixedClock(now)
	repo := habit.NewRepository(storage.NewMemory(), testutil.SequentialIDs(), nil)
	return engine.NewTracker(repo, clock, nil), clock
}

func TestLogCompletionRoundTrip(t *testing.T) {
	tracker, clock := newTestTracker(day(2025, 6, 1).Add(9 * time.Hour))
	ctx := context.Background()

	id, err := tracker.Repo().Create(ctx, "Exercise", "", 1, clock.Now())
	require.NoError(t, err)

	require.NoError(t, tracker.LogCompletion(ctx, id))

	h, err := tracker.Repo().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sun Jun 01 2025"}, h.Logs)
	assert.Equal(t, 1, h.Streak)
	assert.True(t, engine.IsCompleteOn(h, clock.Now()))

	require.NoError(t, tracker.RemoveLastCompletion(ctx, id))

	h, err = tracker.Repo().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, h.Logs)
	assert.Equal(t, 0, h.Streak)
	assert.False(t, engine.IsCompleteOn(h, clock.Now()))
}

func TestLogCompletionBuildsStreak(t *testing.T) {
	tracker, clock := newTestTracker(day(2025, 6, 1))
	ctx := context.Background()

	id, err := tracker.Repo().Create(ctx, "Exercise", "", 1, clock.Now())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, tracker.LogCompletion(ctx, id))
		clock.Advance(24 * time.Hour)
	}

	// The clock is now one day past the last completion; re-reading shows
	// the streak cached at the final completion, not a live value.
	h, err := tracker.Repo().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, h.Streak)
	assert.Len(t, h.Logs, 3)
}

func TestLogCompletionSameDayTwice(t *testing.T) {
	tracker, clock := newTestTracker(day(2025, 6, 1))
	ctx := context.Background()

	id, err := tracker.Repo().Create(ctx, "Exercise", "", 1, clock.Now())
	require.NoError(t, err)

	require.NoError(t, tracker.LogCompletion(ctx, id))
	require.NoError(t, tracker.LogCompletion(ctx, id))

	// Both entries land in the log, but the deduped streak stays at 1.
	h, err := tracker.Repo().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, h.Logs, 2)
	assert.Equal(t, 1, h.Streak)
}

func TestLogCompletionUnknownID(t *testing.T) {
	tracker, _ := newTestTracker(day(2025, 6, 1))

	err := tracker.LogCompletion(context.Background(), "id00000000-0000-4000-8000-000000000099")
	require.Error(t, err)
	assert.True(t, habit.IsInvalidHabit(err))
}

func TestRemoveLastCompletionEmptyLog(t *testing.T) {
	tracker, clock := newTestTracker(day(2025, 6, 1))
	ctx := context.Background()

	id, err := tracker.Repo().Create(ctx, "Exercise", "", 1, clock.Now())
	require.NoError(t, err)

	// Popping an empty log is a no-op, not an error.
	require.NoError(t, tracker.RemoveLastCompletion(ctx, id))

	h, err := tracker.Repo().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, h.Logs)
	assert.Equal(t, 0, h.Streak)
}

func TestRemoveLastCompletionUnknownID(t *testing.T) {
	tracker, _ := newTestTracker(day(2025, 6, 1))

	err := tracker.RemoveLastCompletion(context.Background(), "id00000000-0000-4000-8000-000000000099")
	require.Error(t, err)
	assert.True(t, habit.IsInvalidHabit(err))
}

func TestIsCompleteOn(t *testing.T) {
	h := &habit.Habit{Logs: []string{"Sun Jun 01 2025", "Tue Jun 03 2025"}}

	assert.True(t, engine.IsCompleteOn(h, day(2025, 6, 1)))
	assert.False(t, engine.IsCompleteOn(h, day(2025, 6, 2)))
	assert.True(t, engine.IsCompleteOn(h, day(2025, 6, 3).Add(18*time.Hour)))

	assert.False(t, engine.IsCompleteOn(&habit.Habit{}, day(2025, 6, 1)))

	// Unparseable entries don't match anything; they also don't abort.
	garbage := &habit.Habit{Logs: []string{"???", "Sun Jun 01 2025"}}
	assert.True(t, engine.IsCompleteOn(garbage, day(2025, 6, 1)))
	assert.False(t, engine.IsCompleteOn(garbage, day(2025, 6, 2)))
}
