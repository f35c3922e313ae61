package syntax

// Quote identifies one of the string delimiters.
type Quote uint8

const (
	// QuoteNone is the zero value; it is never produced by the scanners.
	QuoteNone Quote = iota

	// Backtick is the ` delimiter.
	Backtick

	// DoubleQuote is the " delimiter.
	DoubleQuote

	// SingleQuote is the ' delimiter.
	SingleQuote
)

// QuoteFromRune returns the Quote for r, or false if r is not a quote character.
func QuoteFromRune(r rune) (Quote, bool) {
	switch r {
	case '`':
		return Backtick, true
	case '"':
		return DoubleQuote, true
	case '\'':
		return SingleQuote, true
	default:
		return QuoteNone, false
	}
}

// IsQuote reports whether r is a quote character.
func IsQuote(r rune) bool {
	_, ok := QuoteFromRune(r)
	return ok
}

// Rune returns the literal delimiter character.
func (q Quote) Rune() rune {
	switch q {
	case Backtick:
		return '`'
	case DoubleQuote:
		return '"'
	case SingleQuote:
		return '\''
	default:
		return 0
	}
}

// String returns the name of the quote.
func (q Quote) String() string {
	switch q {
	case Backtick:
		return "Backtick"
	case DoubleQuote:
		return "DoubleQuote"
	case SingleQuote:
		return "SingleQuote"
	default:
		return "None"
	}
}
