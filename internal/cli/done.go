package cli

import (
	"github.com/spf13/cobra"
)

// NewDoneCommand creates the done command.
func NewDoneCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Log a completion for a habit",
		Long: `Log a completion for today on the given habit and update its streak.

Completing a habit twice in one day appends a second log entry; the habit
still counts as complete once for the day.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runDone(opts *RootOptions, id string, cmd *cobra.Command) error {
	f := formatter(opts, cmd)
	env, cleanup, err := opts.environment()
	if err != nil {
		return f.Fail(err)
	}
	defer cleanup()

	t := tracker(env)
	if err := t.LogCompletion(cmd.Context(), id); err != nil {
		return f.Fail(err)
	}

	h, err := t.Repo().GetByID(cmd.Context(), id)
	if err != nil {
		return f.Fail(err)
	}

	if done, err := f.JSON(map[string]interface{}{"id": id, "streak": h.Streak}); done {
		return err
	}
	f.Textf("Done. %q streak is now %d.\n", h.Name, h.Streak)
	return nil
}
