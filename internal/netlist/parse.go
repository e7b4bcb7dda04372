// Package netlist parses module declarations of the form:
//
//	%name -> out1, out2
//
package netlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Line is a parsed module declaration.
//
type Line struct {
	Marker  rune // '%', '&' or 0 if absent
	Name    string
	Outputs []string
	Line    int // line number, starting at 1
}

// Parse parses all module declarations from r. Blank lines are skipped.
//
func Parse(r io.Reader) ([]Line, error) {
	var out []Line
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		text := s.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		l, err := ParseLine(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		l.Line = n
		out = append(out, l)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read netlist")
	}
	return out, nil
}

// ParseLine parses a single module declaration. The output list may be
// empty but the arrow is mandatory.
//
func ParseLine(input string) (Line, error) {
	var ln Line
	l := NewLexer(input)

	i := l.Lex()
	if i.Type == Marker {
		ln.Marker = rune(i.Value[0])
		pos := i.Pos + len(i.Value)
		if i = l.Lex(); i.Type == Ident && i.Pos != pos {
			return ln, parseError(input, pos, "unexpected space between kind marker and module name")
		}
	}
	if i.Type != Ident {
		return ln, parseError(input, i.Pos, "expected module name, got "+i.String())
	}
	ln.Name = i.Value

	i = l.Lex()
	if i.Type != Arrow {
		return ln, parseError(input, i.Pos, "expected '->', got "+i.String())
	}

	i = l.Lex()
	if i.Type == EOF {
		return ln, nil
	}
	for {
		if i.Type != Ident {
			return ln, parseError(input, i.Pos, "expected output name, got "+i.String())
		}
		ln.Outputs = append(ln.Outputs, i.Value)
		i = l.Lex()
		switch i.Type {
		case EOF:
			return ln, nil
		case Comma:
			i = l.Lex()
		default:
			return ln, parseError(input, i.Pos, "expected comma or end of input, got "+i.String())
		}
	}
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
