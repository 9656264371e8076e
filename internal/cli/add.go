package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Punkt string
	Nomer int
	Time  string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new departure",
		Long: `Add a new departure record.

Train numbers are deduplicated: departures sharing a number reference a
single group entry, created on first use. A departure added without -n is
grouped under number 0.

Example:
  traindb add --db trains.db -p "Москва" -n 101 -t "14:30"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Punkt, "punkt", "p", "", "destination (required)")
	cmd.Flags().IntVarP(&opts.Nomer, "nomer", "n", 0, "train number")
	cmd.Flags().StringVarP(&opts.Time, "time", "t", "", "departure time (required)")
	_ = cmd.MarkFlagRequired("punkt")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := st.AddTrain(commandContext(cmd), opts.Punkt, opts.Nomer, opts.Time); err != nil {
		return WrapExitError(ExitFailure, "failed to add departure", err)
	}

	slog.Debug("departure recorded",
		"punkt", opts.Punkt,
		"nomer", opts.Nomer,
		"time", opts.Time,
	)
	return nil
}
