package pulsesim_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/pulsesim"
)

func levels(ps []pulsesim.Pulse) []pulsesim.Level {
	out := make([]pulsesim.Level, len(ps))
	for i, p := range ps {
		out[i] = p.Level
	}
	return out
}

func checkPulses(t *testing.T, got []pulsesim.Pulse, from string, l pulsesim.Level, to ...string) {
	t.Helper()
	if len(got) != len(to) {
		t.Fatalf("expected %d pulses, got %v", len(to), got)
	}
	for i, p := range got {
		exp := pulsesim.Pulse{From: from, To: to[i], Level: l}
		if p != exp {
			t.Errorf("pulse %d: expected %v, got %v", i, exp, p)
		}
	}
}

func TestBroadcaster(t *testing.T) {
	b := pulsesim.NewBroadcaster("broadcaster", "a", "b", "c")
	if b.Kind() != pulsesim.KindBroadcaster {
		t.Fatalf("wrong kind %v", b.Kind())
	}
	for _, l := range []pulsesim.Level{pulsesim.Low, pulsesim.High} {
		checkPulses(t, b.Process(nil, "button", l), "broadcaster", l, "a", "b", "c")
	}
}

func TestFlipFlop(t *testing.T) {
	f := pulsesim.NewFlipFlop("ff", "x", "y")
	if f.On() {
		t.Fatal("flip-flop initially on")
	}
	if out := f.Process(nil, "src", pulsesim.High); len(out) != 0 || f.On() {
		t.Fatalf("high pulse: got %v, on=%v", out, f.On())
	}
	checkPulses(t, f.Process(nil, "src", pulsesim.Low), "ff", pulsesim.High, "x", "y")
	checkPulses(t, f.Process(nil, "src", pulsesim.Low), "ff", pulsesim.Low, "x", "y")
	if f.On() {
		t.Fatal("two low pulses did not restore the initial state")
	}
}

func TestFlipFlop_quick(t *testing.T) {
	f := func(in []bool) bool {
		ff := pulsesim.NewFlipFlop("ff", "out")
		lows := 0
		var out []pulsesim.Pulse
		for _, b := range in {
			if !b {
				lows++
			}
			out = ff.Process(out, "src", pulsesim.Level(b))
		}
		if len(out) != lows || ff.On() != (lows%2 == 1) {
			return false
		}
		// emitted levels alternate high, low, high...
		for i, l := range levels(out) {
			if l != pulsesim.Level(i%2 == 0) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestConjunction(t *testing.T) {
	c := pulsesim.NewConjunction("con", []string{"out"}, "a", "b")
	if ins := c.Inputs(); len(ins) != 2 || ins[0] != "a" || ins[1] != "b" {
		t.Fatalf("unexpected inputs %v", ins)
	}
	td := []struct {
		from string
		l    pulsesim.Level
		exp  pulsesim.Level
	}{
		{"a", pulsesim.High, pulsesim.High},
		{"b", pulsesim.High, pulsesim.Low},
		{"b", pulsesim.High, pulsesim.Low},
		{"a", pulsesim.Low, pulsesim.High},
		{"x", pulsesim.High, pulsesim.High}, // not an input
		{"a", pulsesim.High, pulsesim.Low},
	}
	for i, d := range td {
		out := c.Process(nil, d.from, d.l)
		if len(out) != 1 || out[0].Level != d.exp {
			t.Fatalf("step %d: %s -%v-> con: expected %v, got %v", i, d.from, d.l, d.exp, out)
		}
		if l, ok := c.Input(d.from); ok && l != d.l {
			t.Fatalf("step %d: input %s = %v, expected %v", i, d.from, l, d.l)
		}
	}
	if _, ok := c.Input("x"); ok {
		t.Fatal("unknown source added to inputs")
	}
}

func TestConjunction_noInputs(t *testing.T) {
	c := pulsesim.NewConjunction("con", []string{"out"})
	checkPulses(t, c.Process(nil, "x", pulsesim.Low), "con", pulsesim.Low, "out")
}

func TestConjunction_singleInput(t *testing.T) {
	// a single input conjunction is an inverter
	c := pulsesim.NewConjunction("inv", []string{"out"}, "a")
	checkPulses(t, c.Process(nil, "a", pulsesim.Low), "inv", pulsesim.High, "out")
	checkPulses(t, c.Process(nil, "a", pulsesim.High), "inv", pulsesim.Low, "out")
}

func TestKind(t *testing.T) {
	td := []struct {
		k      pulsesim.Kind
		name   string
		marker string
	}{
		{pulsesim.KindBroadcaster, "broadcaster", ""},
		{pulsesim.KindFlipFlop, "flip-flop", "%"},
		{pulsesim.KindConjunction, "conjunction", "&"},
		{pulsesim.Kind(42), "Kind(42)", ""},
	}
	for _, d := range td {
		if s := d.k.String(); s != d.name {
			t.Errorf("expected %q, got %q", d.name, s)
		}
		if m := d.k.Marker(); m != d.marker {
			t.Errorf("%v: expected marker %q, got %q", d.k, d.marker, m)
		}
	}
}
