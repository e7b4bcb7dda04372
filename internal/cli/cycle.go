package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db47h/pulsesim"
)

// CycleOptions holds flags for the cycle command.
type CycleOptions struct {
	*RootOptions
	Watch      []string
	Sink       string
	MaxPresses uint64
}

// WatchResult is the first press on which a watched module received a low
// pulse.
type WatchResult struct {
	Module     string `json:"module"`
	FirstPress uint64 `json:"first_press"`
}

// CycleResult is the output of the cycle command.
type CycleResult struct {
	Watch   []WatchResult `json:"watch"`
	Presses uint64        `json:"presses"`
	LCM     uint64        `json:"lcm"`
}

func (r CycleResult) String() string {
	var b strings.Builder
	for _, w := range r.Watch {
		fmt.Fprintf(&b, "%s: %d\n", w.Module, w.FirstPress)
	}
	fmt.Fprintf(&b, "presses: %d\nlcm:     %d\n", r.Presses, r.LCM)
	return b.String()
}

// NewCycleCommand creates the cycle command.
func NewCycleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CycleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cycle [netlist]",
		Short: "Predict the first press on which all watched modules receive a low pulse",
		Long: `Press the button until each watched module has received a low pulse, then
report the least common multiple of the presses on which this first happened.

The watch set is taken from --watch, then from the config file. If neither is
set, it defaults to the inputs of the conjunction driving the --sink module.

The result is only correct if each watched module receives low pulses
periodically, starting at press 0 with a period equal to its first press.

Example:
  pulsesim cycle input.txt
  pulsesim cycle --watch ln,dr,zx,vn input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("watch") {
				opts.Watch = opts.Config.Watch
			}
			if !cmd.Flags().Changed("sink") {
				opts.Sink = opts.Config.Sink
			}
			if !cmd.Flags().Changed("max-presses") {
				opts.MaxPresses = opts.Config.MaxPresses
			}
			return runCycle(cmd, opts, args)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Watch, "watch", "w", nil, "modules to watch (comma separated)")
	cmd.Flags().StringVar(&opts.Sink, "sink", "rx", "sink used to derive the watch set")
	cmd.Flags().Uint64Var(&opts.MaxPresses, "max-presses", pulsesim.DefaultMaxPresses, "give up after this many presses")

	return cmd
}

func runCycle(cmd *cobra.Command, opts *CycleOptions, args []string) error {
	n, err := opts.loadNetwork(args)
	if err != nil {
		return err
	}

	watch := opts.Watch
	if len(watch) == 0 {
		if watch, err = n.Feeders(opts.Sink); err != nil {
			return WrapExitError(ExitCommandError, "cannot derive watch set", err)
		}
		opts.Logger.Info("derived watch set", "sink", opts.Sink, "watch", watch)
	}

	d := opts.newDispatcher(n)
	a, err := pulsesim.NewCycleAnalyzer(d, watch...)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid watch set", err)
	}
	a.MaxPresses = opts.MaxPresses
	a.Logger = opts.Logger

	lcm, err := a.Run()
	if err != nil {
		return WrapExitError(ExitFailure, "cycle analysis failed", err)
	}

	r := CycleResult{Presses: d.Presses(), LCM: lcm}
	for _, w := range a.Watch() {
		r.Watch = append(r.Watch, WatchResult{Module: w, FirstPress: a.First(w)})
	}
	return opts.formatter(cmd).Success(r)
}
