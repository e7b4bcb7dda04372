// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"log/slog"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxPresses is the default press limit of a CycleAnalyzer.
//
const DefaultMaxPresses = 1000000

// CycleAnalyzer predicts the first button press on which a set of watched
// modules all receive a low pulse.
//
// It presses the button until each watched module has received a low pulse
// at least once, then returns the least common multiple of the press indices
// at which this first happened.
//
// The result is only meaningful if each watched module receives a low pulse
// periodically, with a period equal to the index of the first press on which
// it does. This holds for networks where each watched module is driven by an
// independent counter that resets itself, but not for arbitrary networks.
// Choosing the wrong watch set yields a wrong answer without any error.
//
type CycleAnalyzer struct {
	// MaxPresses is the maximum number of presses run by Run. If 0,
	// DefaultMaxPresses is used.
	MaxPresses uint64
	// Logger, if not nil, receives a message every time a watched module
	// receives its first low pulse.
	Logger *slog.Logger

	d       *Dispatcher
	watch   []string
	first   map[string]uint64
	pending int
}

// NewCycleAnalyzer returns a new CycleAnalyzer watching the given modules
// through dispatcher d. Watched names must be modules or sinks of the network.
//
// d must not have run any press yet, or must be Reset first: pulses sent
// before the analyzer is attached are not seen.
//
func NewCycleAnalyzer(d *Dispatcher, watch ...string) (*CycleAnalyzer, error) {
	if len(watch) == 0 {
		return nil, errors.New("empty watch set")
	}
	if n := d.Presses(); n != 0 {
		return nil, errors.Errorf("dispatcher already ran %d presses", n)
	}
	a := &CycleAnalyzer{
		d:     d,
		first: make(map[string]uint64, len(watch)),
	}
	for _, w := range watch {
		if !d.net.Has(w) {
			return nil, errors.Errorf("watched module %q not found in network", w)
		}
		if _, ok := a.first[w]; ok {
			return nil, errors.Errorf("module %q watched more than once", w)
		}
		a.first[w] = 0
		a.watch = append(a.watch, w)
	}
	a.pending = len(a.watch)
	d.Observe(a.observe)
	d.onReset(a.restart)
	return a, nil
}

func (a *CycleAnalyzer) restart() {
	for _, w := range a.watch {
		a.first[w] = 0
	}
	a.pending = len(a.watch)
}

func (a *CycleAnalyzer) observe(press uint64, p Pulse) {
	if p.Level != Low || a.pending == 0 {
		return
	}
	if n, ok := a.first[p.To]; ok && n == 0 {
		a.first[p.To] = press
		a.pending--
		if a.Logger != nil {
			a.Logger.Info("watch fired", "module", p.To, "press", press)
		}
	}
}

// Done returns true once all watched modules have received a low pulse.
//
func (a *CycleAnalyzer) Done() bool { return a.pending == 0 }

// First returns the index of the first press on which module name received
// a low pulse, or 0 if it has not yet happened or name is not watched.
//
func (a *CycleAnalyzer) First(name string) uint64 {
	return a.first[name]
}

// Watch returns the watched modules.
//
func (a *CycleAnalyzer) Watch() []string {
	return append([]string(nil), a.watch...)
}

// Run presses the button until all watched modules have received a low
// pulse and returns the LCM of their first press indices.
//
// Press indices are those of the dispatcher, which starts from press 1.
// If Run fails because MaxPresses is reached, calling it again with a higher
// bound resumes where it stopped. Resetting the dispatcher clears all first
// press indices recorded so far.
//
func (a *CycleAnalyzer) Run() (uint64, error) {
	limit := a.MaxPresses
	if limit == 0 {
		limit = DefaultMaxPresses
	}
	for !a.Done() {
		if a.d.Presses() >= limit {
			return 0, errors.Errorf("no low pulse received by %s after %d presses",
				strings.Join(a.missing(), ", "), a.d.Presses())
		}
		a.d.Press()
	}
	ns := make([]uint64, len(a.watch))
	for i, w := range a.watch {
		ns[i] = a.first[w]
	}
	return LCM(ns...)
}

func (a *CycleAnalyzer) missing() []string {
	var out []string
	for _, w := range a.watch {
		if a.first[w] == 0 {
			out = append(out, w)
		}
	}
	return out
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of ns. It returns 1 if ns is empty
// and 0 if any of ns is 0. An error is returned if the result does not fit
// in an uint64.
//
func LCM(ns ...uint64) (uint64, error) {
	r := uint64(1)
	for _, n := range ns {
		if n == 0 {
			return 0, nil
		}
		hi, lo := bits.Mul64(r/gcd(r, n), n)
		if hi != 0 {
			return 0, errors.Errorf("lcm of %v overflows uint64", ns)
		}
		r = lo
	}
	return r, nil
}
