package netlist

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Type is the type of a lexical item.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	Marker
	Arrow
	Comma
)

var typeNames = [...]string{
	EOF:    "end of input",
	Raw:    "raw character",
	Ident:  "identifier",
	Marker: "kind marker",
	Arrow:  "'->'",
	Comma:  "','",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Item is a lexical item.
//
type Item struct {
	Type  Type
	Value string
	Pos   int // byte offset in the input
}

func (i Item) String() string {
	switch i.Type {
	case EOF, Arrow, Comma:
		return i.Type.String()
	}
	return i.Type.String() + " " + strconv.Quote(i.Value)
}

// A StateFn is a lexer state. It returns the next state, or nil to go back
// to the initial state.
//
type StateFn func(l *Lexer) StateFn

const eof = -1

// Lexer splits a single netlist line into items.
//
type Lexer struct {
	input string
	start int  // start of the current item
	pos   int  // current position
	cur   rune // last rune read
	width int  // width of cur
	items []Item
	state StateFn
}

// NewLexer returns a new lexer for the given input line.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, state: lexInit}
}

// Lex returns the next item. Once the input is exhausted or an invalid
// character is found, Lex only returns EOF.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state = l.state(l); l.state == nil {
			l.state = lexInit
		}
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next reads the next rune.
//
func (l *Lexer) Next() rune {
	if l.pos >= len(l.input) {
		l.cur, l.width = eof, 0
		return eof
	}
	l.cur, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return l.cur
}

// Backup unreads the last rune. It can be called only once per call to Next.
//
func (l *Lexer) Backup() {
	l.pos -= l.width
	l.width = 0
}

// Current returns the last rune read by Next.
//
func (l *Lexer) Current() rune { return l.cur }

// AcceptWhile reads runes while f returns true.
//
func (l *Lexer) AcceptWhile(f func(rune) bool) {
	for r := l.Next(); r != eof && f(r); r = l.Next() {
	}
	l.Backup()
}

// Ignore skips input read since the last emitted item.
//
func (l *Lexer) Ignore() { l.start = l.pos }

// Emit emits an item of type t spanning from the end of the last emitted
// item to the current position.
//
func (l *Lexer) Emit(t Type) {
	l.items = append(l.items, Item{Type: t, Value: l.input[l.start:l.pos], Pos: l.start})
	l.start = l.pos
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func lexInit(l *Lexer) StateFn {
	r := l.Next()
	switch {
	case r == eof:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
		l.Ignore()
	case isIdentRune(r):
		l.AcceptWhile(isIdentRune)
		l.Emit(Ident)
	case r == '%' || r == '&':
		l.Emit(Marker)
	case r == ',':
		l.Emit(Comma)
	case r == '-':
		if l.Next() == '>' {
			l.Emit(Arrow)
			break
		}
		l.Backup()
		fallthrough
	default:
		l.Emit(Raw)
		return lexEOF
	}
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *Lexer) StateFn {
	l.start = l.pos
	l.Emit(EOF)
	return lexEOF
}
