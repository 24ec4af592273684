package cli

import (
	"github.com/spf13/cobra"

	"habitkeep/internal/habit"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one habit in full",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runShow(opts *RootOptions, id string, cmd *cobra.Command) error {
	f := formatter(opts, cmd)
	env, cleanup, err := opts.environment()
	if err != nil {
		return f.Fail(err)
	}
	defer cleanup()

	h, err := tracker(env).Repo().GetByID(cmd.Context(), id)
	if err != nil {
		return f.Fail(err)
	}

	view := viewOf(habit.Entry{ID: id, Habit: h})
	if done, err := f.JSON(view); done {
		return err
	}

	f.Textf("ID:          %s\n", id)
	f.Textf("Name:        %s\n", h.Name)
	if h.Description != "" {
		f.Textf("Description: %s\n", h.Description)
	}
	f.Textf("Every:       %s\n", pluralDays(h.Frequency))
	f.Textf("Started:     %s\n", h.StartDateTime)
	f.Textf("Streak:      %d\n", h.Streak)
	f.Textf("Completions: %d\n", len(h.Logs))
	for _, entry := range h.Logs {
		f.Textf("  - %s\n", entry)
	}
	return nil
}
