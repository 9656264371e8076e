package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dkovalov/traindb/internal/render"
)

// SelectOptions holds flags for the select command.
type SelectOptions struct {
	*RootOptions
	Select string
}

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SelectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Display departures with a given train number",
		Long: `Print the departures whose train number equals the -s value.

The match is textual: "select -s 101" finds departures added with -n 101,
while "-s 0101" finds nothing. An unknown number prints nothing.

Example:
  traindb select --db trains.db -s 101`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Select, "select", "s", "", "train number to select (required)")
	_ = cmd.MarkFlagRequired("select")

	return cmd
}

func runSelect(opts *SelectOptions, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore(st)

	departures, err := st.SelectByNumber(commandContext(cmd), opts.Select)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to query departures", err)
	}
	slog.Debug("departures loaded", "nomer", opts.Select, "count", len(departures))

	render.Table(cmd.OutOrStdout(), departures)
	return nil
}
