package cli

import (
	"github.com/spf13/cobra"
)

// NewThemeCommand creates the theme command.
func NewThemeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Show or set the UI theme",
		Long: `Show the saved UI theme, or set it when a name is given.

The theme lives in the same store as the habit records, under a key the
habit operations ignore.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runTheme(rootOpts, name, cmd)
		},
	}
	return cmd
}

func runTheme(opts *RootOptions, name string, cmd *cobra.Command) error {
	f := formatter(opts, cmd)
	env, cleanup, err := opts.environment()
	if err != nil {
		return f.Fail(err)
	}
	defer cleanup()

	store := settingsStore(env)

	if name != "" {
		if err := store.SetTheme(cmd.Context(), name); err != nil {
			return f.Fail(err)
		}
	}

	theme, err := store.Theme(cmd.Context())
	if err != nil {
		return f.Fail(err)
	}

	if done, err := f.JSON(map[string]string{"theme": theme}); done {
		return err
	}
	f.Textf("%s\n", theme)
	return nil
}
