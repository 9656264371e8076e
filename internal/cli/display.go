package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dkovalov/traindb/internal/render"
)

// NewDisplayCommand creates the display command.
func NewDisplayCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "display",
		Short: "Display all departures",
		Long: `Print every recorded departure as a table.

An empty log prints nothing.

Example:
  traindb display --db trains.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisplay(rootOpts, cmd)
		},
	}

	return cmd
}

func runDisplay(opts *RootOptions, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer closeStore(st)

	departures, err := st.SelectAll(commandContext(cmd))
	if err != nil {
		return WrapExitError(ExitFailure, "failed to query departures", err)
	}
	slog.Debug("departures loaded", "count", len(departures))

	render.Table(cmd.OutOrStdout(), departures)
	return nil
}
