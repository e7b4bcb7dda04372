// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// Level is the level of a pulse.
//
type Level bool

// Pulse levels.
//
const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// A Pulse travels along a wire from module From to module To.
//
type Pulse struct {
	From  string
	To    string
	Level Level
}

// String returns the pulse formatted as "from -level-> to".
//
func (p Pulse) String() string {
	return p.From + " -" + p.Level.String() + "-> " + p.To
}

// Counts holds the number of low and high pulses sent.
//
type Counts struct {
	Low  uint64
	High uint64
}

// Add returns the sum of c and o.
//
func (c Counts) Add(o Counts) Counts {
	return Counts{Low: c.Low + o.Low, High: c.High + o.High}
}

// Total returns the total number of pulses.
//
func (c Counts) Total() uint64 { return c.Low + c.High }

// Product returns Low * High.
//
func (c Counts) Product() uint64 { return c.Low * c.High }

func (c *Counts) count(l Level) {
	if l {
		c.High++
	} else {
		c.Low++
	}
}
