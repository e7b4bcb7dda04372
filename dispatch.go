// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// Default names of the entry points of a network.
//
const (
	DefaultButton      = "button"
	DefaultBroadcaster = "broadcaster"
)

// An Observer is called for every pulse in delivery order, before the pulse
// is delivered. press is the index of the button press that produced the
// pulse, starting at 1.
//
type Observer func(press uint64, p Pulse)

// Dispatcher runs button presses on a network.
//
// A Dispatcher owns the state of the network's modules: the network must
// not be shared with another Dispatcher while in use.
//
type Dispatcher struct {
	net    *Network
	button string
	entry  string
	obs    []Observer
	queue  []Pulse
	press  uint64
	total  Counts
	resets []func() // called by Reset
}

// NewDispatcher returns a new Dispatcher for network n. Presses send a low
// pulse from DefaultButton to DefaultBroadcaster.
//
func NewDispatcher(n *Network) *Dispatcher {
	return &Dispatcher{
		net:    n,
		button: DefaultButton,
		entry:  DefaultBroadcaster,
		queue:  make([]Pulse, 0, 64),
	}
}

// SetEntry changes the names of the button and of the module it is wired to.
//
func (d *Dispatcher) SetEntry(button, broadcaster string) {
	d.button, d.entry = button, broadcaster
}

// Network returns the network d runs on.
//
func (d *Dispatcher) Network() *Network { return d.net }

// Observe adds an observer. Observers are called in the order they were
// added.
//
func (d *Dispatcher) Observe(o Observer) {
	d.obs = append(d.obs, o)
}

// Presses returns the number of button presses run so far.
//
func (d *Dispatcher) Presses() uint64 { return d.press }

// Counts returns the pulse counts accumulated over all presses.
//
func (d *Dispatcher) Counts() Counts { return d.total }

// Press presses the button once and runs the simulation until no pulse is
// left in flight. It returns the number of pulses sent during this press,
// including the one sent by the button.
//
func (d *Dispatcher) Press() Counts {
	var c Counts
	d.press++
	q := append(d.queue[:0], Pulse{From: d.button, To: d.entry, Level: Low})
	for i := 0; i < len(q); i++ {
		p := q[i]
		c.count(p.Level)
		for _, o := range d.obs {
			o(d.press, p)
		}
		if m := d.net.mods[p.To]; m != nil {
			q = m.Process(q, p.From, p.Level)
		}
	}
	// keep the backing array for the next press
	d.queue = q[:0]
	d.total = d.total.Add(c)
	return c
}

// PressN presses the button n times and returns the sum of the pulse counts.
//
func (d *Dispatcher) PressN(n int) Counts {
	var c Counts
	for i := 0; i < n; i++ {
		c = c.Add(d.Press())
	}
	return c
}

// Reset resets the network and the press counter. Attached cycle analyzers
// start over.
//
func (d *Dispatcher) Reset() {
	d.net.Reset()
	d.press = 0
	d.total = Counts{}
	for _, f := range d.resets {
		f()
	}
}

func (d *Dispatcher) onReset(f func()) {
	d.resets = append(d.resets, f)
}
