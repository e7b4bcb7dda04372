// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"github.com/pkg/errors"
)

// A Decl declares a module: its kind, name and the modules wired to its
// outputs.
//
type Decl struct {
	Kind    Kind
	Name    string
	Outputs []string
}

// Network is a set of modules and the wires between them.
//
// Wires are fixed once the network is built. Any wire destination that does
// not name a module is a sink: pulses sent to it are counted but have no
// further effect.
//
type Network struct {
	mods  map[string]Module
	order []Module            // declaration order
	ins   map[string][]string // fan-in of every wire destination
	dsts  []string            // wire destinations in order of first appearance
}

// NewNetwork builds a new network from the given declarations.
//
// Conjunction inputs are wired from the declarations: every module with a
// wire to a conjunction becomes one of its inputs.
//
func NewNetwork(decls ...Decl) (*Network, error) {
	n := &Network{
		mods: make(map[string]Module, len(decls)),
		ins:  make(map[string][]string),
	}

	for _, d := range decls {
		if d.Name == "" {
			return nil, errors.New("empty module name")
		}
		if _, ok := n.mods[d.Name]; ok {
			return nil, errors.Errorf("module %q declared more than once", d.Name)
		}
		outs := append([]string(nil), d.Outputs...)
		for _, o := range outs {
			if o == "" {
				return nil, errors.Errorf("module %q: empty output name", d.Name)
			}
		}
		var m Module
		switch d.Kind {
		case KindBroadcaster:
			m = NewBroadcaster(d.Name, outs...)
		case KindFlipFlop:
			m = NewFlipFlop(d.Name, outs...)
		case KindConjunction:
			m = NewConjunction(d.Name, outs)
		default:
			return nil, errors.Errorf("module %q: unsupported kind %v", d.Name, d.Kind)
		}
		n.mods[d.Name] = m
		n.order = append(n.order, m)
	}

	// fan-in
	for _, m := range n.order {
		for _, o := range m.Outputs() {
			ins, seen := n.ins[o]
			if !seen {
				n.dsts = append(n.dsts, o)
			}
			if !contains(ins, m.Name()) {
				n.ins[o] = append(ins, m.Name())
			}
			if c, ok := n.mods[o].(*Conjunction); ok {
				c.addInput(m.Name())
			}
		}
	}

	return n, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Module returns the module with the given name or nil if there is no such
// module (the name is a sink or unknown).
//
func (n *Network) Module(name string) Module {
	return n.mods[name]
}

// Modules returns all modules in declaration order.
//
func (n *Network) Modules() []Module {
	return append([]Module(nil), n.order...)
}

// Size returns the module count in the network.
//
func (n *Network) Size() int { return len(n.order) }

// Inputs returns the names of the modules wired to name, in declaration order.
//
func (n *Network) Inputs(name string) []string {
	return append([]string(nil), n.ins[name]...)
}

// Has returns true if name is either a module or the destination of a wire.
//
func (n *Network) Has(name string) bool {
	if _, ok := n.mods[name]; ok {
		return true
	}
	_, ok := n.ins[name]
	return ok
}

// Sinks returns the wire destinations that are not modules, in order of
// first appearance.
//
func (n *Network) Sinks() []string {
	var out []string
	for _, d := range n.dsts {
		if _, ok := n.mods[d]; !ok {
			out = append(out, d)
		}
	}
	return out
}

// Feeders returns the inputs of the single conjunction wired to sink.
//
// In networks where sink is driven by one conjunction whose inputs each fire
// periodically, these inputs are the modules to watch with a CycleAnalyzer.
//
func (n *Network) Feeders(sink string) ([]string, error) {
	ins := n.ins[sink]
	if len(ins) != 1 {
		return nil, errors.Errorf("%q must have exactly one input, found %d", sink, len(ins))
	}
	c, ok := n.mods[ins[0]].(*Conjunction)
	if !ok {
		return nil, errors.Errorf("%q is not driven by a conjunction", sink)
	}
	if len(c.ins) == 0 {
		return nil, errors.Errorf("conjunction %q has no inputs", c.name)
	}
	return c.Inputs(), nil
}

// Reset restores all modules to their initial state.
//
func (n *Network) Reset() {
	for _, m := range n.order {
		m.reset()
	}
}
