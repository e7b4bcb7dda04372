package cli

import (
	"os"

	"github.com/db47h/pulsesim"
)

// loadNetwork parses the netlist named by args, or by the config file if
// args is empty.
func (o *RootOptions) loadNetwork(args []string) (*pulsesim.Network, error) {
	path := o.Config.Input
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, NewExitError(ExitCommandError, "no netlist given")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open netlist", err)
	}
	defer f.Close()

	n, err := pulsesim.ParseNetwork(f)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load netlist "+path, err)
	}
	o.Logger.Debug("netlist loaded", "path", path, "modules", n.Size(), "sinks", n.Sinks())
	return n, nil
}

// newDispatcher returns a dispatcher for n using the configured entry point.
func (o *RootOptions) newDispatcher(n *pulsesim.Network) *pulsesim.Dispatcher {
	d := pulsesim.NewDispatcher(n)
	d.SetEntry(o.Config.Button, o.Config.Broadcaster)
	if n.Module(o.Config.Broadcaster) == nil {
		o.Logger.Warn("entry module not found, presses will only send the button pulse",
			"module", o.Config.Broadcaster)
	}
	return d
}
