package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"habitkeep/internal/habit"
)

// habitView is the JSON projection of a stored habit.
type habitView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Frequency   int    `json:"frequency_days"`
	Start       string `json:"start_date_time"`
	Streak      int    `json:"streak"`
	Completions int    `json:"completions"`
}

func viewOf(e habit.Entry) habitView {
	return habitView{
		ID:          e.ID,
		Name:        e.Habit.Name,
		Description: e.Habit.Description,
		Frequency:   e.Habit.Frequency,
		Start:       e.Habit.StartDateTime,
		Streak:      e.Habit.Streak,
		Completions: len(e.Habit.Logs),
	}
}

func viewsOf(entries []habit.Entry) []habitView {
	views := make([]habitView, len(entries))
	for i, e := range entries {
		views[i] = viewOf(e)
	}
	return views
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all habits",
		Long: `List every stored habit with its frequency and current streak.

Habits are ordered by id, so output is stable across runs and backends.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	f := formatter(opts, cmd)
	env, cleanup, err := opts.environment()
	if err != nil {
		return f.Fail(err)
	}
	defer cleanup()

	entries, err := tracker(env).Repo().ListAll(cmd.Context())
	if err != nil {
		return f.Fail(err)
	}

	if done, err := f.JSON(viewsOf(entries)); done {
		return err
	}

	if len(entries) == 0 {
		f.Textf("No habits yet. Create one with: habitkeep create <name>\n")
		return nil
	}
	writeHabitTable(f, entries)
	return nil
}

// writeHabitTable renders entries as an aligned text table.
func writeHabitTable(f *OutputFormatter, entries []habit.Entry) {
	w := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)
	defer w.Flush()

	writeTabRow(w, "ID", "NAME", "EVERY", "STREAK", "DONE")
	for _, e := range entries {
		writeTabRow(w,
			e.ID,
			e.Habit.Name,
			pluralDays(e.Habit.Frequency),
			strconv.Itoa(e.Habit.Streak),
			strconv.Itoa(len(e.Habit.Logs)),
		)
	}
}

func writeTabRow(w io.Writer, cols ...string) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}

// pluralDays renders a frequency as "day" / "N days" / "?" for records
// whose frequency failed numeric coercion.
func pluralDays(n int) string {
	switch {
	case n == 1:
		return "day"
	case n > 1:
		return fmt.Sprintf("%d days", n)
	default:
		return "?"
	}
}
