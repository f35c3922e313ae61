package syntax

import "unicode"

// Args tokenizes a string into values and whitespace runs.
//
// Args is a forward-only sequence; to restart, create a new one.
type Args struct {
	scan scanner
}

// NewArgs returns an Args over s.
func NewArgs(s string) *Args {
	return &Args{scan: newScanner(s)}
}

// Offset returns the number of bytes consumed so far.
func (a *Args) Offset() int {
	return a.scan.offset()
}

// Next returns the next token, or false when the input is exhausted.
func (a *Args) Next() (Arg, bool) {
	r, ok := a.scan.next()
	if !ok {
		return Arg{}, false
	}

	if q, isQuote := QuoteFromRune(r); isQuote {
		return a.scan.scanString(q), true
	}
	if unicode.IsSpace(r) {
		return a.scan.scanWhitespace(), true
	}
	return a.scan.scanWord(), true
}

// Tokenize returns every Arg in s.
func Tokenize(s string) []Arg {
	var out []Arg
	args := NewArgs(s)
	for {
		arg, ok := args.Next()
		if !ok {
			return out
		}
		out = append(out, arg)
	}
}

// LastArg returns the final Arg of s, or false if s is empty.
func LastArg(s string) (Arg, bool) {
	var (
		last  Arg
		found bool
	)
	args := NewArgs(s)
	for {
		arg, ok := args.Next()
		if !ok {
			return last, found
		}
		last, found = arg, true
	}
}

// FirstArg returns the first Arg of s, or false if s is empty.
func FirstArg(s string) (Arg, bool) {
	return NewArgs(s).Next()
}
