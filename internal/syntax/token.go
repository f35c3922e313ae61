package syntax

import "fmt"

// TokenKind discriminates the variants of Token.
type TokenKind uint8

const (
	// TokenValue carries a Value.
	TokenValue TokenKind = iota

	// TokenWhitespace carries a maximal run of whitespace.
	TokenWhitespace
)

// Token is the smallest unit produced by the scanning engine: a value or a
// whitespace run.
type Token struct {
	Kind  TokenKind
	Value Value
	Space string
}

// Arg is a Token produced by Args.
type Arg = Token

// ValueToken wraps v in a Token.
func ValueToken(v Value) Token {
	return Token{Kind: TokenValue, Value: v}
}

// WhitespaceToken returns a whitespace Token.
func WhitespaceToken(space string) Token {
	return Token{Kind: TokenWhitespace, Space: space}
}

// IsValue reports whether the token carries a value.
func (t Token) IsValue() bool {
	return t.Kind == TokenValue
}

// IsWhitespace reports whether the token is a whitespace run.
func (t Token) IsWhitespace() bool {
	return t.Kind == TokenWhitespace
}

// IsIncomplete reports whether the token is an unterminated quoted value.
func (t Token) IsIncomplete() bool {
	return t.IsValue() && t.Value.IsIncomplete()
}

// QuoteOf returns the delimiter of a quoted value token.
func (t Token) QuoteOf() (Quote, bool) {
	if !t.IsValue() {
		return QuoteNone, false
	}
	return t.Value.QuoteOf()
}

// String returns the token's content: the value text or the whitespace run.
func (t Token) String() string {
	if t.IsWhitespace() {
		return t.Space
	}
	return t.Value.Text
}

// Raw returns the exact substring the token consumed.
func (t Token) Raw() string {
	if t.IsWhitespace() {
		return t.Space
	}
	return t.Value.Raw()
}

// GoString implements fmt.GoStringer for debugging.
func (t Token) GoString() string {
	if t.IsWhitespace() {
		return fmt.Sprintf("Whitespace(%q)", t.Space)
	}
	return "Value(" + t.Value.GoString() + ")"
}
