package cli

import (
	"github.com/spf13/cobra"
)

// NewUndoCommand creates the undo command.
func NewUndoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Remove a habit's most recent completion",
		Long: `Remove the most recently logged completion from the given habit and
update its streak. Undoing a habit with no completions is a no-op.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUndo(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runUndo(opts *RootOptions, id string, cmd *cobra.Command) error {
	f := formatter(opts, cmd)
	env, cleanup, err := opts.environment()
	if err != nil {
		return f.Fail(err)
	}
	defer cleanup()

	t := tracker(env)
	if err := t.RemoveLastCompletion(cmd.Context(), id); err != nil {
		return f.Fail(err)
	}

	h, err := t.Repo().GetByID(cmd.Context(), id)
	if err != nil {
		return f.Fail(err)
	}

	if done, err := f.JSON(map[string]interface{}{"id": id, "streak": h.Streak}); done {
		return err
	}
	f.Textf("Removed last completion of %q. Streak is now %d.\n", h.Name, h.Streak)
	return nil
}
