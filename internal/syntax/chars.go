package syntax

import (
	"fmt"
	"unicode/utf8"
)

// chars walks a string one encoded rune at a time.
//
// off only ever advances by the width of a decoded rune, so it is always on a
// character boundary. last is the offset of the most recently consumed rune;
// scanners use it as the start of the token the rune opened.
type chars struct {
	s    string
	off  int
	last int
}

func newChars(s string) chars {
	return chars{s: s}
}

// next consumes and returns the next rune.
func (c *chars) next() (rune, bool) {
	if c.off >= len(c.s) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.s[c.off:])
	c.last = c.off
	c.off += size
	return r, true
}

// peek returns the next rune without consuming it.
func (c *chars) peek() (rune, bool) {
	if c.off >= len(c.s) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.s[c.off:])
	return r, true
}

// peekBack returns the rune immediately before the offset.
func (c *chars) peekBack() (rune, bool) {
	if c.off == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(c.s[:c.off])
	return r, true
}

// offset returns the byte position of the next rune, or len(s) at the end.
func (c *chars) offset() int {
	return c.off
}

// tokenStart returns the offset of the rune consumed by the last call to
// next. A dispatching caller has always consumed one rune before handing
// over to a scanner, and that rune belongs to the token being scanned.
func (c *chars) tokenStart() int {
	return c.last
}

// atEnd reports whether the input is exhausted.
func (c *chars) atEnd() bool {
	return c.off >= len(c.s)
}

// slice returns s[from:to]. Offsets come from this type, so a bad range is a
// programming error.
func (c *chars) slice(from, to int) string {
	if from < 0 || to > len(c.s) || from > to {
		panic(fmt.Sprintf("syntax: bad slice [%d:%d] of %d-byte input", from, to, len(c.s)))
	}
	return c.s[from:to]
}
