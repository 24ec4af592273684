package cli

import (
	"github.com/spf13/cobra"
)

// TodayOptions holds flags for the today command.
type TodayOptions struct {
	*RootOptions
	Date string
}

// NewTodayCommand creates the today command.
func NewTodayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TodayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show outstanding habits",
		Long: `Show the habits scheduled for a date that have not been completed on it.

Defaults to today; pass --date YYYY-MM-DD for any other day.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "date to check (default: today)")

	return cmd
}

func runToday(opts *TodayOptions, cmd *cobra.Command) error {
	f := formatter(opts.RootOptions, cmd)
	env, cleanup, err := opts.environment()
	if err != nil {
		return f.Fail(err)
	}
	defer cleanup()

	date, err := parseDateFlag(opts.Date, env.Clock)
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "invalid date", err))
	}

	due, err := tracker(env).HabitsDueOn(cmd.Context(), date)
	if err != nil {
		return f.Fail(err)
	}

	if done, err := f.JSON(viewsOf(due)); done {
		return err
	}

	if len(due) == 0 {
		f.Textf("Nothing outstanding. Nice.\n")
		return nil
	}
	writeHabitTable(f, due)
	return nil
}
