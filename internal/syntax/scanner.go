package syntax

import "unicode"

// scanner is the engine shared by Args and Vars. Each scan method is entered
// after the caller consumed the rune that selected it.
type scanner struct {
	chars chars
}

func newScanner(s string) scanner {
	return scanner{chars: newChars(s)}
}

func (s *scanner) next() (rune, bool) {
	return s.chars.next()
}

func (s *scanner) peek() (rune, bool) {
	return s.chars.peek()
}

func (s *scanner) offset() int {
	return s.chars.offset()
}

func (s *scanner) atEnd() bool {
	return s.chars.atEnd()
}

// scanString consumes a quoted string whose opening delimiter was just read.
//
// The string ends at the first matching delimiter not directly preceded by a
// backslash. This is a one-rune lookback, not escape processing. If input runs
// out first the value is incomplete and spans to the end.
func (s *scanner) scanString(q Quote) Token {
	open := s.chars.tokenStart()
	start := s.chars.offset()
	terminated := false

	for {
		r, ok := s.chars.peek()
		if !ok {
			break
		}
		if r == q.Rune() {
			if prev, _ := s.chars.peekBack(); prev != '\\' {
				terminated = true
				break
			}
		}
		s.chars.next()
	}

	end := s.chars.offset()
	text := s.chars.slice(start, end)

	if terminated {
		s.chars.next()
		return ValueToken(Value{Kind: ValueQuoted, Quote: q, Text: text, raw: s.chars.slice(open, s.chars.offset())})
	}
	return ValueToken(Value{Kind: ValueIncompleteQuoted, Quote: q, Text: text, raw: s.chars.slice(open, end)})
}

// scanWhitespace consumes a maximal whitespace run, the dispatch rune included.
func (s *scanner) scanWhitespace() Token {
	start := s.chars.tokenStart()
	s.skipWhile(unicode.IsSpace)
	return WhitespaceToken(s.chars.slice(start, s.chars.offset()))
}

// scanWord consumes a run of runes that are neither quotes nor whitespace,
// the dispatch rune included.
func (s *scanner) scanWord() Token {
	start := s.chars.tokenStart()
	s.skipWhile(isWordRune)
	text := s.chars.slice(start, s.chars.offset())
	return ValueToken(Word(text))
}

// scanKey consumes a run for an assignment key, which additionally stops at '='.
func (s *scanner) scanKey() string {
	start := s.chars.tokenStart()
	s.skipWhile(isKeyRune)
	return s.chars.slice(start, s.chars.offset())
}

// span returns the input between from and the current offset.
func (s *scanner) span(from int) string {
	return s.chars.slice(from, s.chars.offset())
}

func (s *scanner) skipWhile(accept func(rune) bool) {
	for {
		r, ok := s.chars.peek()
		if !ok || !accept(r) {
			return
		}
		s.chars.next()
	}
}

func isWordRune(r rune) bool {
	return !IsQuote(r) && !unicode.IsSpace(r)
}

func isKeyRune(r rune) bool {
	return r != '=' && isWordRune(r)
}
