// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing pulse networks.
//
package simtest

import (
	"math/bits"
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/pulsesim"
)

// Reference netlists.
//
const (
	// Simple1 sends 8 low and 4 high pulses per press.
	Simple1 = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`
	// Simple2 sends 4 low and 4 high pulses on the first press. After
	// 1000 presses, the product of low and high counts is 11687500.
	Simple2 = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`
)

// MustNetwork parses src and returns the resulting network. It stops the
// test on error.
//
func MustNetwork(t testing.TB, src string) *pulsesim.Network {
	t.Helper()
	n, err := pulsesim.ParseNetwork(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// CounterNetwork returns a netlist where a chain of flip-flops counts button
// presses in binary. For each period p, a conjunction wired to the bits set
// in p sends its first low pulse to the sink "w<p>" on press p.
//
// The returned slice holds the sink names, in the same order as periods.
//
func CounterNetwork(periods ...uint) (string, []string) {
	var top uint
	for _, p := range periods {
		if p == 0 {
			panic("zero period")
		}
		if p > top {
			top = p
		}
	}
	nbits := bits.Len(top)

	// conjunctions wired to each bit
	taps := make([][]string, nbits)
	watch := make([]string, len(periods))
	for i, p := range periods {
		ps := strconv.FormatUint(uint64(p), 10)
		watch[i] = "w" + ps
		for bit := 0; bit < nbits; bit++ {
			if p&(1<<uint(bit)) != 0 {
				taps[bit] = append(taps[bit], "c"+ps)
			}
		}
	}

	var b strings.Builder
	b.WriteString("broadcaster -> b0\n")
	for bit := 0; bit < nbits; bit++ {
		var outs []string
		if bit < nbits-1 {
			outs = append(outs, "b"+strconv.Itoa(bit+1))
		}
		outs = append(outs, taps[bit]...)
		b.WriteString("%b" + strconv.Itoa(bit) + " -> " + strings.Join(outs, ", ") + "\n")
	}
	for i, p := range periods {
		b.WriteString("&c" + strconv.FormatUint(uint64(p), 10) + " -> " + watch[i] + "\n")
	}
	return b.String(), watch
}

// CompareRuns builds two networks from src and checks that they send the
// same pulses, in the same order, over the given number of presses.
//
func CompareRuns(t *testing.T, src string, presses int) {
	t.Helper()

	var trace [2][]pulsesim.Pulse
	var ds [2]*pulsesim.Dispatcher
	for i := range ds {
		k := i
		ds[i] = pulsesim.NewDispatcher(MustNetwork(t, src))
		ds[i].Observe(func(_ uint64, p pulsesim.Pulse) { trace[k] = append(trace[k], p) })
	}

	for i := 1; i <= presses; i++ {
		trace[0], trace[1] = trace[0][:0], trace[1][:0]
		c0, c1 := ds[0].Press(), ds[1].Press()
		if c0 != c1 {
			t.Fatalf("press %d: counts differ: %+v != %+v", i, c0, c1)
		}
		if len(trace[0]) != len(trace[1]) {
			t.Fatalf("press %d: trace length %d != %d", i, len(trace[0]), len(trace[1]))
		}
		for j := range trace[0] {
			if trace[0][j] != trace[1][j] {
				t.Fatalf("press %d, pulse %d: %v != %v", i, j, trace[0][j], trace[1][j])
			}
		}
	}
}
