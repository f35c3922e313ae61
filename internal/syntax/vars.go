package syntax

import (
	"fmt"
	"unicode"
)

// VarKind discriminates the variants of Var.
type VarKind uint8

const (
	// VarPair is a completed KEY=VALUE assignment.
	VarPair VarKind = iota

	// VarIncompletePair is a key followed by whitespace or end of input
	// where an '=' or a value was expected.
	VarIncompletePair

	// VarUnexpectedChar is a quote found where a key was expected.
	VarUnexpectedChar

	// VarWhitespace is a run of whitespace between assignments.
	VarWhitespace
)

// String returns the kind name.
func (k VarKind) String() string {
	switch k {
	case VarPair:
		return "Pair"
	case VarIncompletePair:
		return "IncompletePair"
	case VarUnexpectedChar:
		return "UnexpectedChar"
	case VarWhitespace:
		return "Whitespace"
	default:
		return fmt.Sprintf("VarKind(%d)", k)
	}
}

// Var is a token of the assignment prefix.
type Var struct {
	Kind  VarKind
	Key   string
	Value Value
	Char  rune
	Space string

	raw string
}

// Pair returns a completed assignment.
func Pair(key string, v Value) Var {
	return Var{Kind: VarPair, Key: key, Value: v, raw: key + "=" + v.Raw()}
}

// IsPair reports whether the var is a completed assignment.
func (v Var) IsPair() bool {
	return v.Kind == VarPair
}

// IsIncomplete reports whether the var is an incomplete pair.
func (v Var) IsIncomplete() bool {
	return v.Kind == VarIncompletePair
}

// IsWhitespace reports whether the var is a whitespace run.
func (v Var) IsWhitespace() bool {
	return v.Kind == VarWhitespace
}

// IsError reports whether the var ended the stream.
func (v Var) IsError() bool {
	return v.Kind == VarIncompletePair || v.Kind == VarUnexpectedChar
}

// Raw returns the exact substring the var consumed.
func (v Var) Raw() string {
	return v.raw
}

// GoString implements fmt.GoStringer for debugging.
func (v Var) GoString() string {
	switch v.Kind {
	case VarPair:
		return fmt.Sprintf("Pair(%q, %s)", v.Key, v.Value.GoString())
	case VarIncompletePair:
		return fmt.Sprintf("IncompletePair(%q)", v.Key)
	case VarUnexpectedChar:
		return fmt.Sprintf("UnexpectedChar(%q)", v.Char)
	default:
		return fmt.Sprintf("Whitespace(%q)", v.Space)
	}
}

// Vars tokenizes the KEY=VALUE prefix of a command line.
//
// Once an IncompletePair or UnexpectedChar has been returned the stream is
// finished: no further input is examined. A trailing bare word with nothing
// after it also ends the stream, without a token, so the caller can treat it
// as the program name.
type Vars struct {
	scan scanner
	err  bool
}

// NewVars returns a Vars over s.
func NewVars(s string) *Vars {
	return &Vars{scan: newScanner(s)}
}

// Offset returns the number of bytes consumed so far.
func (v *Vars) Offset() int {
	return v.scan.offset()
}

// Next returns the next var, or false when the stream has ended.
func (v *Vars) Next() (Var, bool) {
	if v.err {
		return Var{}, false
	}

	r, ok := v.scan.next()
	if !ok {
		return Var{}, false
	}

	if IsQuote(r) {
		v.err = true
		return Var{Kind: VarUnexpectedChar, Char: r, raw: string(r)}, true
	}
	if unicode.IsSpace(r) {
		tok := v.scan.scanWhitespace()
		return Var{Kind: VarWhitespace, Space: tok.Space, raw: tok.Space}, true
	}
	return v.nextPair()
}

func (v *Vars) nextPair() (Var, bool) {
	start := v.scan.chars.tokenStart()
	key := v.scan.scanKey()

	if v.scan.atEnd() {
		return Var{}, false
	}

	r, _ := v.scan.peek()
	switch {
	case r == '=':
		v.scan.next()
		after, ok := v.scan.peek()
		if !ok || unicode.IsSpace(after) {
			v.err = true
			return Var{Kind: VarIncompletePair, Key: key, raw: v.scan.span(start)}, true
		}

		v.scan.next()
		var tok Token
		if q, isQuote := QuoteFromRune(after); isQuote {
			tok = v.scan.scanString(q)
		} else {
			tok = v.scan.scanWord()
		}
		return Var{Kind: VarPair, Key: key, Value: tok.Value, raw: v.scan.span(start)}, true

	case unicode.IsSpace(r):
		v.err = true
		return Var{Kind: VarIncompletePair, Key: key, raw: v.scan.span(start)}, true

	default:
		// Only a quote can stop a key here, as in KEY"x".
		v.scan.next()
		v.err = true
		return Var{Kind: VarUnexpectedChar, Char: r, raw: v.scan.span(start)}, true
	}
}

// TokenizeVars returns every Var in the assignment prefix of s.
func TokenizeVars(s string) []Var {
	var out []Var
	vars := NewVars(s)
	for {
		v, ok := vars.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
