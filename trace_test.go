package pulsesim_test

import (
	"bytes"
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/simtest"
	"github.com/sebdah/goldie/v2"
)

func TestTracer(t *testing.T) {
	td := []struct {
		name    string
		src     string
		presses int
	}{
		{"simple1", simtest.Simple1, 1},
		{"simple2", simtest.Simple2, 4},
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			var buf bytes.Buffer
			tr := pulsesim.NewTracer(&buf)
			ds := pulsesim.NewDispatcher(simtest.MustNetwork(t, d.src))
			ds.Observe(tr.Observe)
			ds.PressN(d.presses)
			if err := tr.Flush(); err != nil {
				t.Fatal(err)
			}
			g.Assert(t, d.name, buf.Bytes())
		})
	}
}
