package pulsesim

import (
	"io"

	"github.com/db47h/pulsesim/internal/netlist"
	"github.com/pkg/errors"
)

var markerKinds = map[rune]Kind{
	0:   KindBroadcaster,
	'%': KindFlipFlop,
	'&': KindConjunction,
}

// ParseNetwork reads a netlist from r and builds a Network. The netlist
// has one module declaration per line:
//
//	broadcaster -> a, b
//	%a -> b
//	&b -> output
//
// A '%' prefix declares a flip-flop, a '&' prefix a conjunction. Without
// prefix, the module is a broadcaster.
//
func ParseNetwork(r io.Reader) (*Network, error) {
	ls, err := netlist.Parse(r)
	if err != nil {
		return nil, err
	}
	decls := make([]Decl, len(ls))
	for i, l := range ls {
		k, ok := markerKinds[l.Marker]
		if !ok {
			return nil, errors.Errorf("line %d: unsupported module kind %q", l.Line, l.Marker)
		}
		decls[i] = Decl{Kind: k, Name: l.Name, Outputs: l.Outputs}
	}
	n, err := NewNetwork(decls...)
	if err != nil {
		return nil, errors.Wrap(err, "build network")
	}
	return n, nil
}
