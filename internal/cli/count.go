package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CountOptions holds flags for the count command.
type CountOptions struct {
	*RootOptions
	Presses int
}

// CountResult is the output of the count command.
type CountResult struct {
	Presses int    `json:"presses"`
	Low     uint64 `json:"low"`
	High    uint64 `json:"high"`
	Product uint64 `json:"product"`
}

func (r CountResult) String() string {
	return fmt.Sprintf("presses: %d\nlow:     %d\nhigh:    %d\nproduct: %d\n", r.Presses, r.Low, r.High, r.Product)
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CountOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "count [netlist]",
		Short: "Count low and high pulses over a number of button presses",
		Long: `Press the button a number of times and report the total number of low
and high pulses sent, as well as their product.

Example:
  pulsesim count input.txt
  pulsesim count --presses 10 input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("presses") {
				opts.Presses = opts.Config.Presses
			}
			return runCount(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Presses, "presses", "n", 1000, "number of button presses")

	return cmd
}

func runCount(cmd *cobra.Command, opts *CountOptions, args []string) error {
	if opts.Presses < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid press count %d", opts.Presses))
	}
	n, err := opts.loadNetwork(args)
	if err != nil {
		return err
	}
	d := opts.newDispatcher(n)
	c := d.PressN(opts.Presses)
	opts.Logger.Debug("presses done", "presses", d.Presses(), "low", c.Low, "high", c.High)

	return opts.formatter(cmd).Success(CountResult{
		Presses: opts.Presses,
		Low:     c.Low,
		High:    c.High,
		Product: c.Product(),
	})
}
