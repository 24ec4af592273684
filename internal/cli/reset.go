package cli

import (
	"github.com/spf13/cobra"
)

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every habit",
		Long: `Delete every habit record from the store.

Only habit records are removed; other keys sharing the store (such as the
saved theme) are untouched.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(rootOpts, cmd)
		},
	}
	return cmd
}

func runReset(opts *RootOptions, cmd *cobra.Command) error {
	f := formatter(opts, cmd)
	env, cleanup, err := opts.environment()
	if err != nil {
		return f.Fail(err)
	}
	defer cleanup()

	removed, err := tracker(env).Repo().Reset(cmd.Context())
	if err != nil {
		return f.Fail(err)
	}

	if done, err := f.JSON(map[string]int{"removed": removed}); done {
		return err
	}
	f.Textf("Removed %d habit(s)\n", removed)
	return nil
}
