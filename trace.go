// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"bufio"
	"io"
	"strconv"
)

// A Tracer is an Observer that writes every pulse to an io.Writer, one
// pulse per line. A blank line and a press header separate presses:
//
//	press 1
//	button -low-> broadcaster
//	broadcaster -low-> a
//
// Callers must call Flush once done.
//
type Tracer struct {
	w    *bufio.Writer
	last uint64
	err  error
}

// NewTracer returns a new Tracer writing to w.
//
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: bufio.NewWriter(w)}
}

// Observe implements Observer.
//
func (t *Tracer) Observe(press uint64, p Pulse) {
	if t.err != nil {
		return
	}
	if press != t.last {
		if t.last != 0 {
			t.w.WriteByte('\n')
		}
		t.w.WriteString("press ")
		t.w.WriteString(strconv.FormatUint(press, 10))
		t.w.WriteByte('\n')
		t.last = press
	}
	t.w.WriteString(p.String())
	_, t.err = t.w.WriteString("\n")
}

// Flush flushes buffered output and returns the first write error, if any.
//
func (t *Tracer) Flush() error {
	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}
