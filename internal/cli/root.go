// Package cli implements the habitkeep command line interface.
//
// Every command supports --format json|text; JSON output follows the
// CLIResponse envelope so scripts can rely on a stable shape, and verbose
// diagnostics go to stderr so they never corrupt JSON on stdout.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"habitkeep/internal/config"
	"habitkeep/internal/engine"
	"habitkeep/internal/habit"
	"habitkeep/internal/settings"
	"habitkeep/internal/storage"
	"habitkeep/internal/storage/badgerkv"
	"habitkeep/internal/storage/rediskv"
	"habitkeep/internal/storage/sqlitekv"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// env overrides the config-derived environment. Tests inject a memory
	// adapter, fixed clock, and sequential ids here; production leaves it
	// nil and the backend is opened from the config file.
	env *Env
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Env supplies the capabilities commands run against.
type Env struct {
	Adapter storage.Adapter
	Clock   engine.Clock
	NewID   habit.IDSource
	Logger  *slog.Logger

	// Close releases the adapter, when it holds resources. May be nil.
	Close func() error
}

// NewRootCommand creates the root command for the habitkeep CLI.
// A non-nil env bypasses config loading; pass nil in production.
func NewRootCommand(env *Env) *cobra.Command {
	opts := &RootOptions{env: env}

	cmd := &cobra.Command{
		Use:   "habitkeep",
		Short: "habitkeep - personal habit tracking",
		Long:  "Track recurring habits, log completions, and follow your streaks.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "path to config file")

	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewTodayCommand(opts))
	cmd.AddCommand(NewDoneCommand(opts))
	cmd.AddCommand(NewUndoCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewThemeCommand(opts))

	return cmd
}

// environment returns the injected Env or opens one from the config file.
// The returned cleanup func is never nil.
func (o *RootOptions) environment() (*Env, func(), error) {
	if o.env != nil {
		return o.env, func() {}, nil
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "load config", err)
	}

	env := &Env{
		Clock:  engine.SystemClock{},
		NewID:  habit.UUIDSource,
		Logger: slog.Default(),
	}

	switch cfg.Backend {
	case config.BackendMemory:
		env.Adapter = storage.NewMemory()
	case config.BackendSQLite:
		s, err := sqlitekv.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "open sqlite backend", err)
		}
		env.Adapter, env.Close = s, s.Close
	case config.BackendBadger:
		s, err := badgerkv.Open(badgerkv.Config{
			Path:       cfg.Badger.Path,
			InMemory:   cfg.Badger.InMemory,
			SyncWrites: cfg.Badger.SyncWrites,
		})
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "open badger backend", err)
		}
		env.Adapter, env.Close = s, s.Close
	case config.BackendRedis:
		s, err := rediskv.Open(context.Background(), rediskv.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "open redis backend", err)
		}
		env.Adapter, env.Close = s, s.Close
	default:
		return nil, nil, NewExitError(ExitCommandError,
			fmt.Sprintf("unknown backend %q", cfg.Backend))
	}

	cleanup := func() {
		if env.Close != nil {
			if err := env.Close(); err != nil {
				slog.Error("closing storage backend", "error", err)
			}
		}
	}
	return env, cleanup, nil
}

// tracker builds the repository and tracker for an environment.
func tracker(env *Env) *engine.Tracker {
	repo := habit.NewRepository(env.Adapter, env.NewID, env.Logger)
	return engine.NewTracker(repo, env.Clock, env.Logger)
}

// settingsStore builds the settings store for an environment.
func settingsStore(env *Env) *settings.Store {
	return settings.NewStore(env.Adapter)
}

// formatter builds the output formatter for a command invocation.
func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// parseDateFlag interprets a --date value, defaulting to the clock's now
// when the flag is empty.
func parseDateFlag(value string, clock engine.Clock) (time.Time, error) {
	if value == "" {
		return clock.Now(), nil
	}
	t, ok := habit.ParseDate(value)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", value)
	}
	return t, nil
}

func configureLogging(verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "habitkeep.yaml"
	}
	return home + "/.habitkeep/config.yaml"
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
