package cli

import (
	"github.com/spf13/cobra"
)

// CreateOptions holds flags for the create command.
type CreateOptions struct {
	*RootOptions
	Description string
	Frequency   int
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CreateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new habit",
		Long: `Create a new habit starting today.

Frequency is the interval in days between scheduled occurrences:
1 for daily, 7 for weekly, 30 for a monthly approximation.

Example:
  habitkeep create "Drink Water" --description "Eight glasses" --frequency 1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "habit description")
	cmd.Flags().IntVarP(&opts.Frequency, "frequency", "f", 1, "days between occurrences")

	return cmd
}

func runCreate(opts *CreateOptions, name string, cmd *cobra.Command) error {
	f := formatter(opts.RootOptions, cmd)
	env, cleanup, err := opts.environment()
	if err != nil {
		return f.Fail(err)
	}
	defer cleanup()

	t := tracker(env)
	id, err := t.Repo().Create(cmd.Context(), name, opts.Description, opts.Frequency, t.Now())
	if err != nil {
		return f.Fail(err)
	}

	if done, err := f.JSON(map[string]string{"id": id}); done {
		return err
	}
	f.Textf("Created habit %s\n", id)
	return nil
}
