package syntax

import "fmt"

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	// ValueWord is an unquoted run of characters.
	ValueWord ValueKind = iota

	// ValueQuoted is a terminated quoted string.
	ValueQuoted

	// ValueIncompleteQuoted is a quoted string whose closing delimiter was
	// never found before the end of input.
	ValueIncompleteQuoted
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueWord:
		return "Word"
	case ValueQuoted:
		return "Quoted"
	case ValueIncompleteQuoted:
		return "IncompleteQuoted"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// Value is a parsed lexical value.
//
// Text never includes the delimiting quote characters. Both Text and the raw
// span are substrings of the scanned input; nothing is copied.
type Value struct {
	Kind  ValueKind
	Quote Quote
	Text  string

	raw string
}

// Word returns a bare word value.
func Word(text string) Value {
	return Value{Kind: ValueWord, Text: text, raw: text}
}

// Quoted returns a terminated quoted value.
func Quoted(q Quote, text string) Value {
	d := string(q.Rune())
	return Value{Kind: ValueQuoted, Quote: q, Text: text, raw: d + text + d}
}

// IncompleteQuoted returns a quoted value that was never closed.
func IncompleteQuoted(q Quote, text string) Value {
	return Value{Kind: ValueIncompleteQuoted, Quote: q, Text: text, raw: string(q.Rune()) + text}
}

// String returns the value's content without delimiters.
func (v Value) String() string {
	return v.Text
}

// Raw returns the exact input span the value was scanned from, delimiters included.
func (v Value) Raw() string {
	return v.raw
}

// IsWord reports whether the value is a bare word.
func (v Value) IsWord() bool {
	return v.Kind == ValueWord
}

// IsQuoted reports whether the value is quoted, terminated or not.
func (v Value) IsQuoted() bool {
	return v.Kind == ValueQuoted || v.Kind == ValueIncompleteQuoted
}

// IsIncomplete reports whether the value is an unterminated quoted string.
func (v Value) IsIncomplete() bool {
	return v.Kind == ValueIncompleteQuoted
}

// QuoteOf returns the value's delimiter, or false for a bare word.
func (v Value) QuoteOf() (Quote, bool) {
	if !v.IsQuoted() {
		return QuoteNone, false
	}
	return v.Quote, true
}

// GoString implements fmt.GoStringer for debugging.
func (v Value) GoString() string {
	if v.IsQuoted() {
		return fmt.Sprintf("%s(%s, %q)", v.Kind, v.Quote, v.Text)
	}
	return fmt.Sprintf("%s(%q)", v.Kind, v.Text)
}
