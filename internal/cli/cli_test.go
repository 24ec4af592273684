package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitkeep/internal/cli"
	"habitkeep/internal/storage"
	"habitkeep/internal/testutil"
)

const (
	dailyID  = "id00000000-0000-4000-8000-000000000001"
	weeklyID = "id00000000-0000-4000-8000-000000000002"
)

// newTestEnv injects a memory adapter, a clock pinned to Sun Jun 01 2025,
// and sequential ids, so command output is byte-for-byte reproducible.
func newTestEnv() (*cli.Env, *testutil.FixedClock) {
	clock := testutil.NewFixedClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	env := &cli.Env{
		Adapter: storage.NewMemory(),
		Clock:   clock,
		NewID:   testutil.SequentialIDs(),
	}
	return env, clock
}

// execute runs one CLI invocation against env and captures stdout.
func execute(t *testing.T, env *cli.Env, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCommand(env)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// mustExecute runs one CLI invocation that is expected to succeed.
func mustExecute(t *testing.T, env *cli.Env, args ...string) string {
	t.Helper()
	out, err := execute(t, env, args...)
	require.NoError(t, err, "command %v failed: %s", args, out)
	return out
}

// seedHabits creates the standard fixture through the CLI itself: a daily
// and a weekly habit, with the daily one completed today.
func seedHabits(t *testing.T) (*cli.Env, *testutil.FixedClock) {
	t.Helper()
	env, clock := newTestEnv()
	mustExecute(t, env, "create", "Drink Water", "-d", "Eight glasses", "-f", "1")
	mustExecute(t, env, "create", "Water Plants", "-f", "7")
	mustExecute(t, env, "done", dailyID)
	return env, clock
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestCreateText(t *testing.T) {
	env, _ := newTestEnv()

	out := mustExecute(t, env, "create", "Drink Water")
	assert.Equal(t, "Created habit "+dailyID+"\n", out)
}

func TestCreateJSON(t *testing.T) {
	env, _ := newTestEnv()

	out := mustExecute(t, env, "create", "Drink Water", "--format", "json")

	var resp struct {
		Status string            `json:"status"`
		Data   map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, dailyID, resp.Data["id"])
}

func TestCreateValidationError(t *testing.T) {
	env, _ := newTestEnv()

	out, err := execute(t, env, "create", "Exercise", "-f", "0")
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}

func TestCreateValidationErrorJSON(t *testing.T) {
	env, _ := newTestEnv()

	out, err := execute(t, env, "create", "Exercise", "-f", "0", "--format", "json")
	require.Error(t, err)

	var resp struct {
		Status string `json:"status"`
		Error  struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "E002", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestListEmpty(t *testing.T) {
	env, _ := newTestEnv()

	out := mustExecute(t, env, "list")
	assert.Equal(t, "No habits yet. Create one with: habitkeep create <name>\n", out)
}

func TestListText(t *testing.T) {
	env, _ := seedHabits(t)

	out := mustExecute(t, env, "list")
	newGoldie(t).Assert(t, "list_text", []byte(out))
}

func TestListJSON(t *testing.T) {
	env, _ := seedHabits(t)

	out := mustExecute(t, env, "list", "--format", "json")
	newGoldie(t).Assert(t, "list_json", []byte(out))
}

func TestTodayExcludesCompleted(t *testing.T) {
	env, _ := seedHabits(t)

	out := mustExecute(t, env, "today")
	newGoldie(t).Assert(t, "today_text", []byte(out))
}

func TestTodayAllDone(t *testing.T) {
	env, _ := seedHabits(t)
	mustExecute(t, env, "done", weeklyID)

	out := mustExecute(t, env, "today")
	assert.Equal(t, "Nothing outstanding. Nice.\n", out)
}

func TestTodayDateFlag(t *testing.T) {
	env, _ := seedHabits(t)

	// Mid-week only the daily habit is scheduled; today's completion does
	// not count for another date.
	out := mustExecute(t, env, "today", "--date", "2025-06-04")
	assert.Contains(t, out, dailyID)
	assert.NotContains(t, out, weeklyID)
}

func TestTodayInvalidDate(t *testing.T) {
	env, _ := newTestEnv()

	_, err := execute(t, env, "today", "--date", "soonish")
	require.Error(t, err)
	assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
}

func TestDoneText(t *testing.T) {
	env, _ := newTestEnv()
	mustExecute(t, env, "create", "Drink Water")

	out := mustExecute(t, env, "done", dailyID)
	assert.Equal(t, "Done. \"Drink Water\" streak is now 1.\n", out)
}

func TestDoneStreakAcrossDays(t *testing.T) {
	env, clock := newTestEnv()
	mustExecute(t, env, "create", "Drink Water")

	mustExecute(t, env, "done", dailyID)
	clock.Advance(24 * time.Hour)
	out := mustExecute(t, env, "done", dailyID)
	assert.Equal(t, "Done. \"Drink Water\" streak is now 2.\n", out)
}

func TestDoneUnknownID(t *testing.T) {
	env, _ := newTestEnv()

	out, err := execute(t, env, "done", dailyID)
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.GetExitCode(err))
	assert.Contains(t, out, "Error [E004]")
}

func TestUndoText(t *testing.T) {
	env, _ := seedHabits(t)

	out := mustExecute(t, env, "undo", dailyID)
	assert.Equal(t, "Removed last completion of \"Drink Water\". Streak is now 0.\n", out)
}

func TestUndoEmptyLog(t *testing.T) {
	env, _ := newTestEnv()
	mustExecute(t, env, "create", "Drink Water")

	out := mustExecute(t, env, "undo", dailyID)
	assert.Equal(t, "Removed last completion of \"Drink Water\". Streak is now 0.\n", out)
}

func TestShowText(t *testing.T) {
	env, _ := seedHabits(t)

	out := mustExecute(t, env, "show", dailyID)
	newGoldie(t).Assert(t, "show_text", []byte(out))
}

func TestShowNotFound(t *testing.T) {
	env, _ := newTestEnv()

	out, err := execute(t, env, "show", dailyID)
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.GetExitCode(err))
	assert.Contains(t, out, "Error [E003]")
}

func TestDeleteThenList(t *testing.T) {
	env, _ := newTestEnv()
	mustExecute(t, env, "create", "Drink Water")

	out := mustExecute(t, env, "delete", dailyID)
	assert.Equal(t, "Deleted "+dailyID+"\n", out)

	out = mustExecute(t, env, "list")
	assert.Equal(t, "No habits yet. Create one with: habitkeep create <name>\n", out)
}

func TestResetPreservesTheme(t *testing.T) {
	env, _ := seedHabits(t)
	mustExecute(t, env, "theme", "pink")

	out := mustExecute(t, env, "reset")
	assert.Equal(t, "Removed 2 habit(s)\n", out)

	out = mustExecute(t, env, "theme")
	assert.Equal(t, "pink\n", out)
}

func TestStatsText(t *testing.T) {
	env, _ := seedHabits(t)

	out := mustExecute(t, env, "stats")
	assert.Equal(t, "Sun Jun 01 2025: 1/2 habits completed\n", out)
}

func TestStatsJSON(t *testing.T) {
	env, _ := seedHabits(t)

	out := mustExecute(t, env, "stats", "--format", "json")
	assert.JSONEq(t, `{"status":"ok","data":{"completed":1,"total":2}}`, out)
}

func TestStatsNoHabitsScheduled(t *testing.T) {
	env, _ := seedHabits(t)

	out := mustExecute(t, env, "stats", "--date", "2025-05-01")
	assert.Equal(t, "No habits scheduled for Thu May 01 2025.\n", out)
}

func TestThemeDefaultAndSet(t *testing.T) {
	env, _ := newTestEnv()

	out := mustExecute(t, env, "theme")
	assert.Equal(t, "default\n", out)

	out = mustExecute(t, env, "theme", "tritons")
	assert.Equal(t, "tritons\n", out)
}

func TestThemeUnknown(t *testing.T) {
	env, _ := newTestEnv()

	out, err := execute(t, env, "theme", "neon")
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.GetExitCode(err))
	assert.Contains(t, out, "unknown theme")
}

func TestInvalidFormat(t *testing.T) {
	env, _ := newTestEnv()

	_, err := execute(t, env, "list", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
