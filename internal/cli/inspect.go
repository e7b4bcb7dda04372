package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// ModuleInfo describes a module in the output of the inspect command.
type ModuleInfo struct {
	Name    string   `json:"name"`
	Kind    string   `json:"kind"`
	Outputs []string `json:"outputs"`
	Inputs  []string `json:"inputs"`
}

// InspectResult is the output of the inspect command.
type InspectResult struct {
	Modules []ModuleInfo `json:"modules"`
	Sinks   []string     `json:"sinks"`
}

func (r InspectResult) String() string {
	var b strings.Builder
	for _, m := range r.Modules {
		b.WriteString(m.Name)
		b.WriteString(" (")
		b.WriteString(m.Kind)
		b.WriteString(") -> ")
		b.WriteString(strings.Join(m.Outputs, ", "))
		if len(m.Inputs) > 0 {
			b.WriteString(" <- ")
			b.WriteString(strings.Join(m.Inputs, ", "))
		}
		b.WriteByte('\n')
	}
	if len(r.Sinks) > 0 {
		b.WriteString("sinks: ")
		b.WriteString(strings.Join(r.Sinks, ", "))
		b.WriteByte('\n')
	}
	return b.String()
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := rootOpts

	cmd := &cobra.Command{
		Use:   "inspect [netlist]",
		Short: "List modules with their kind, outputs and inputs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := opts.loadNetwork(args)
			if err != nil {
				return err
			}
			r := InspectResult{Sinks: n.Sinks()}
			for _, m := range n.Modules() {
				r.Modules = append(r.Modules, ModuleInfo{
					Name:    m.Name(),
					Kind:    m.Kind().String(),
					Outputs: m.Outputs(),
					Inputs:  n.Inputs(m.Name()),
				})
			}
			return opts.formatter(cmd).Success(r)
		},
	}

	return cmd
}
