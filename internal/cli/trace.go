package cli

import (
	"github.com/spf13/cobra"

	"github.com/db47h/pulsesim"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Presses int
}

// TracePulse is a pulse in the JSON output of the trace command.
type TracePulse struct {
	Press uint64 `json:"press"`
	From  string `json:"from"`
	To    string `json:"to"`
	Level string `json:"level"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace [netlist]",
		Short: "Print every pulse sent during the first button presses",
		Long: `Print every pulse in delivery order, one per line:

  button -low-> broadcaster
  broadcaster -low-> a

Example:
  pulsesim trace --presses 4 input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Presses, "presses", "n", 1, "number of button presses")

	return cmd
}

func runTrace(cmd *cobra.Command, opts *TraceOptions, args []string) error {
	if opts.Presses < 0 {
		return NewExitError(ExitCommandError, "invalid press count")
	}
	n, err := opts.loadNetwork(args)
	if err != nil {
		return err
	}
	d := opts.newDispatcher(n)
	out := opts.formatter(cmd)

	if opts.Format == "json" {
		ps := []TracePulse{}
		d.Observe(func(press uint64, p pulsesim.Pulse) {
			ps = append(ps, TracePulse{Press: press, From: p.From, To: p.To, Level: p.Level.String()})
		})
		d.PressN(opts.Presses)
		return out.Success(ps)
	}

	tr := pulsesim.NewTracer(out.Writer)
	d.Observe(tr.Observe)
	d.PressN(opts.Presses)
	return tr.Flush()
}
