package cli

import (
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a habit",
		Long: `Delete the habit with the given id, including its completion history.

Deletion is idempotent: deleting an id that does not exist succeeds.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runDelete(opts *RootOptions, id string, cmd *cobra.Command) error {
	f := formatter(opts, cmd)
	env, cleanup, err := opts.environment()
	if err != nil {
		return f.Fail(err)
	}
	defer cleanup()

	if err := tracker(env).Repo().Delete(cmd.Context(), id); err != nil {
		return f.Fail(err)
	}

	if done, err := f.JSON(map[string]string{"id": id}); done {
		return err
	}
	f.Textf("Deleted %s\n", id)
	return nil
}
