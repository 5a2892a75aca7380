package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/config"
	"github.com/roach88/todo/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Database   string
	ConfigPath string

	// Resolved in PersistentPreRunE.
	config config.Config
	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the todo CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Append a todo and print every stored todo",
		Long: `Open the todo database (creating it if it doesn't exist), ensure the
schema, insert one todo and print all todos as "<id>: <title>" lines.

Example:
  todo
  todo --db ./todos.db --title "Buy milk"
  todo list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("title") {
				title = opts.config.Title
			}
			return runSample(cmd, opts, title)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", config.DefaultDatabase, "path to SQLite database")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")

	cmd.Flags().StringVar(&title, "title", config.DefaultTitle, "title of the todo to insert")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// resolve validates global flags, loads the config file and applies flag
// overrides on top of it.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if !isValidFormat(o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitFailure, ErrCodeConfig, "failed to load config", err)
	}
	if cmd.Flags().Changed("db") {
		cfg.Database = o.Database
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitFailure, ErrCodeConfig, "invalid --db", err)
	}
	o.config = cfg
	o.logger = newLogger(cmd.ErrOrStderr(), o.Verbose)
	return nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// openStore opens the configured database and ensures its schema.
// The caller must close the returned store.
func openStore(ctx context.Context, opts *RootOptions) (*store.Store, error) {
	path := opts.config.Database
	opts.logger.Debug("opening database", "path", path)

	st, err := store.Open(path)
	if err != nil {
		return nil, storageError("failed to open database", err)
	}
	if err := st.EnsureSchema(ctx); err != nil {
		closeStore(st, opts.logger)
		return nil, storageError("failed to ensure schema", err)
	}

	opts.logger.Debug("database ready", "path", path)
	return st, nil
}

func closeStore(st *store.Store, logger *slog.Logger) {
	if err := st.Close(); err != nil {
		logger.Error("error closing database", "path", st.Path(), "error", err)
	}
}

// Execute runs the CLI with the given arguments and returns the process exit
// code. Errors are reported on stderr in the selected format.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	format := opts.Format
	if !isValidFormat(format) {
		format = "text"
	}
	f := &OutputFormatter{Format: format, Writer: stderr}
	if writeErr := f.Error(GetErrorCode(err), err.Error()); writeErr != nil {
		fmt.Fprintln(stderr, errors.Join(err, writeErr))
	}
	return GetExitCode(err)
}
