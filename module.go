// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import "strconv"

// Kind identifies the type of a module.
//
type Kind int

// Module kinds.
//
const (
	KindBroadcaster Kind = iota
	KindFlipFlop
	KindConjunction
)

var kindNames = [...]string{
	KindBroadcaster: "broadcaster",
	KindFlipFlop:    "flip-flop",
	KindConjunction: "conjunction",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Marker returns the prefix used for modules of kind k in a netlist.
//
func (k Kind) Marker() string {
	switch k {
	case KindFlipFlop:
		return "%"
	case KindConjunction:
		return "&"
	}
	return ""
}

// A Module receives pulses and emits new ones.
//
// The set of implementations is closed: *Broadcaster, *FlipFlop and
// *Conjunction.
//
type Module interface {
	// Name returns the module's identity.
	Name() string
	// Kind returns the module's kind.
	Kind() Kind
	// Outputs returns the modules wired to the outputs of this module, in
	// emission order. The returned slice must not be modified.
	Outputs() []string
	// Process delivers a pulse sent by module from. Emitted pulses are
	// appended to dst in wire order and the resulting slice is returned.
	Process(dst []Pulse, from string, l Level) []Pulse

	reset()
}

type base struct {
	name string
	outs []string
}

func (b *base) Name() string      { return b.name }
func (b *base) Outputs() []string { return b.outs }

func (b *base) emit(dst []Pulse, l Level) []Pulse {
	for _, o := range b.outs {
		dst = append(dst, Pulse{From: b.name, To: o, Level: l})
	}
	return dst
}

// Broadcaster forwards any pulse it receives to all its outputs.
//
type Broadcaster struct {
	base
}

// NewBroadcaster returns a new broadcaster.
//
func NewBroadcaster(name string, outputs ...string) *Broadcaster {
	return &Broadcaster{base{name, outputs}}
}

// Kind implements Module.
//
func (*Broadcaster) Kind() Kind { return KindBroadcaster }

// Process implements Module.
//
func (b *Broadcaster) Process(dst []Pulse, _ string, l Level) []Pulse {
	return b.emit(dst, l)
}

func (*Broadcaster) reset() {}

// FlipFlop is either on or off, initially off. High pulses are ignored.
// A low pulse toggles the flip-flop which then emits a high pulse if it
// turned on, a low pulse if it turned off.
//
type FlipFlop struct {
	base
	on bool
}

// NewFlipFlop returns a new flip-flop in the off state.
//
func NewFlipFlop(name string, outputs ...string) *FlipFlop {
	return &FlipFlop{base: base{name, outputs}}
}

// Kind implements Module.
//
func (*FlipFlop) Kind() Kind { return KindFlipFlop }

// On returns the flip-flop's state.
//
func (f *FlipFlop) On() bool { return f.on }

// Process implements Module.
//
func (f *FlipFlop) Process(dst []Pulse, _ string, l Level) []Pulse {
	if l == High {
		return dst
	}
	f.on = !f.on
	return f.emit(dst, Level(f.on))
}

func (f *FlipFlop) reset() { f.on = false }

// Conjunction remembers the level of the last pulse received from each of
// its inputs, initially low. On every pulse, it updates the memory for the
// sending input, then emits a low pulse if all remembered levels are high,
// otherwise a high pulse. A conjunction without inputs always emits low.
//
type Conjunction struct {
	base
	ins  []string
	mem  map[string]Level
	high int // number of inputs currently remembered as high
}

// NewConjunction returns a new conjunction with the given inputs. The input
// set is fixed: pulses from modules not listed in inputs are processed but
// not remembered.
//
func NewConjunction(name string, outputs []string, inputs ...string) *Conjunction {
	c := &Conjunction{
		base: base{name, outputs},
		mem:  make(map[string]Level, len(inputs)),
	}
	for _, in := range inputs {
		c.addInput(in)
	}
	return c
}

func (c *Conjunction) addInput(name string) {
	if _, ok := c.mem[name]; ok {
		return
	}
	c.ins = append(c.ins, name)
	c.mem[name] = Low
}

// Kind implements Module.
//
func (*Conjunction) Kind() Kind { return KindConjunction }

// Inputs returns the names of the conjunction's inputs.
//
func (c *Conjunction) Inputs() []string {
	return append([]string(nil), c.ins...)
}

// Input returns the last level received from input name. ok is false if
// name is not an input of c.
//
func (c *Conjunction) Input(name string) (l Level, ok bool) {
	l, ok = c.mem[name]
	return l, ok
}

// Process implements Module.
//
func (c *Conjunction) Process(dst []Pulse, from string, l Level) []Pulse {
	if prev, ok := c.mem[from]; ok && prev != l {
		c.mem[from] = l
		if l == High {
			c.high++
		} else {
			c.high--
		}
	}
	return c.emit(dst, Level(c.high != len(c.ins)))
}

func (c *Conjunction) reset() {
	for k := range c.mem {
		c.mem[k] = Low
	}
	c.high = 0
}
