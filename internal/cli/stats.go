package cli

import (
	"github.com/spf13/cobra"

	"habitkeep/internal/habit"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Date string
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the completion ratio for a date",
		Long: `Show how many of the habits scheduled for a date have been completed.

Defaults to today; pass --date YYYY-MM-DD for any other day.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "date to check (default: today)")

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command) error {
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

	ratio, err := tracker(env).CompletionRatio(cmd.Context(), date)
	if err != nil {
		return f.Fail(err)
	}

	if done, err := f.JSON(ratio); done {
		return err
	}

	if ratio.Total == 0 {
		f.Textf("No habits scheduled for %s.\n", habit.FormatDay(date))
		return nil
	}
	f.Textf("%s: %d/%d habits completed\n", habit.FormatDay(date), ratio.Completed, ratio.Total)
	return nil
}
