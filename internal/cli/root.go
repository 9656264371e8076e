package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkovalov/traindb/internal/config"
	"github.com/dkovalov/traindb/internal/store"
)

// Version is the program version reported by --version.
const Version = "0.1.0"

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	Verbose  bool
	Database string
}

// NewRootCommand creates the root command for the traindb CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "traindb",
		Short: "Record and query train departures",
		Long: `traindb keeps a log of train departures in an embedded DuckDB file
and prints it as a formatted text table.

Departures sharing a train number are grouped: the number is stored once
and every departure references it.`,
		Version: Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", config.DefaultDatabase(), "path to the database file")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewDisplayCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))

	return cmd
}

// setupLogging installs the default slog handler; --verbose lowers the
// level to debug.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// openStore opens the database, running idempotent schema init. Every
// subcommand goes through here before touching data.
func openStore(opts *RootOptions) (*store.Store, error) {
	slog.Debug("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

// closeStore closes the store, logging instead of failing the command.
func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}

// commandContext returns the command's context, or a background one when
// cobra was driven without SetContext (as in tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
