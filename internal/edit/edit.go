package edit

import (
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/keyshell/internal/syntax"
)

// Edit is a line buffer with a cursor.
// The zero value is an empty buffer ready to use.
type Edit struct {
	buf    []byte
	cursor int
}

// New returns an empty Edit.
func New() *Edit {
	return &Edit{}
}

// FromString returns an Edit holding s with the cursor at the start.
func FromString(s string) *Edit {
	return &Edit{buf: []byte(s)}
}

// String returns the buffer contents.
func (e *Edit) String() string {
	return string(e.buf)
}

// Len returns the buffer length in bytes.
func (e *Edit) Len() int {
	return len(e.buf)
}

// IsEmpty reports whether the buffer is empty.
func (e *Edit) IsEmpty() bool {
	return len(e.buf) == 0
}

// Cursor returns the cursor byte offset.
func (e *Edit) Cursor() int {
	return e.cursor
}

// AtEnd reports whether the cursor is after the last character.
func (e *Edit) AtEnd() bool {
	return e.cursor == len(e.buf)
}

// Split returns the text left and right of the cursor.
func (e *Edit) Split() (string, string) {
	return string(e.buf[:e.cursor]), string(e.buf[e.cursor:])
}

// Start returns the text left of the cursor.
func (e *Edit) Start() string {
	return string(e.buf[:e.cursor])
}

// End returns the text right of the cursor.
func (e *Edit) End() string {
	return string(e.buf[e.cursor:])
}

// Shift returns how many bytes the cursor sits before the end of the buffer.
// Renderers use it to move the terminal cursor back from the end of the line.
func (e *Edit) Shift() int {
	return len(e.buf) - e.cursor
}

// Command parses the buffer. It does not change the buffer or the cursor.
func (e *Edit) Command() syntax.Command {
	return syntax.Parse(string(e.buf))
}

// Set replaces the buffer with s and moves the cursor to the end.
func (e *Edit) Set(s string) {
	e.buf = append(e.buf[:0], s...)
	e.cursor = len(e.buf)
}

// Clear empties the buffer.
func (e *Edit) Clear() {
	e.buf = e.buf[:0]
	e.cursor = 0
}

// Take returns the buffer contents and clears it.
func (e *Edit) Take() string {
	s := string(e.buf)
	e.Clear()
	return s
}

// Insert types r at the cursor.
//
// A quote typed after a value quoted with the same character, and directly
// before that character, moves over it instead. Whitespace is dropped when the cursor is
// already next to a whitespace run. Everything else is inserted as is.
func (e *Edit) Insert(r rune) {
	left, right := e.Split()

	if q, ok := syntax.QuoteFromRune(r); ok {
		if last, ok := syntax.LastArg(left); ok && last.IsValue() && last.Value.IsQuoted() && last.Value.Quote == q {
			if next, _ := utf8.DecodeRuneInString(right); right != "" && next == r {
				e.Next(1)
				return
			}
		}
	} else if unicode.IsSpace(r) {
		if last, ok := syntax.LastArg(left); ok && last.IsWhitespace() {
			return
		}
		if first, ok := syntax.FirstArg(right); ok && first.IsWhitespace() {
			return
		}
	}

	e.insertRaw(r)
}

// InsertString types every rune of s in turn.
func (e *Edit) InsertString(s string) {
	for _, r := range s {
		e.Insert(r)
	}
}

func (e *Edit) insertRaw(r rune) {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	e.buf = slices.Insert(e.buf, e.cursor, enc[:n]...)
	e.cursor += n
}

// Remove deletes the character before the cursor.
//
// With the cursor between a pair of identical quotes both are removed.
func (e *Edit) Remove() {
	left, right := e.Split()
	before, _ := utf8.DecodeLastRuneInString(left)
	after, _ := utf8.DecodeRuneInString(right)

	if left != "" && right != "" && before == after && syntax.IsQuote(before) {
		e.Next(1)
		e.removeInternal()
	}
	e.removeInternal()
}

func (e *Edit) removeInternal() {
	if len(e.buf) == 0 || e.AtEnd() {
		_, size := utf8.DecodeLastRune(e.buf)
		e.buf = e.buf[:len(e.buf)-size]
		e.cursor = len(e.buf)
		return
	}
	if e.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRune(e.buf[:e.cursor])
	e.buf = slices.Delete(e.buf, e.cursor-size, e.cursor)
	e.cursor -= size
}

// Delete removes the character under the cursor.
func (e *Edit) Delete() {
	if e.AtEnd() {
		return
	}
	_, size := utf8.DecodeRune(e.buf[e.cursor:])
	e.buf = slices.Delete(e.buf, e.cursor, e.cursor+size)
}

// RemoveWord moves to the previous word boundary and truncates the buffer
// there, discarding everything right of the new cursor.
func (e *Edit) RemoveWord(boundaries []rune) {
	e.PrevWord(boundaries)
	e.RemoveEnd()
}

// RemoveEnd truncates the buffer at the cursor.
func (e *Edit) RemoveEnd() {
	e.buf = e.buf[:e.cursor]
}

// MoveStart moves the cursor to the start of the buffer.
func (e *Edit) MoveStart() {
	e.cursor = 0
}

// MoveEnd moves the cursor to the end of the buffer.
func (e *Edit) MoveEnd() {
	e.cursor = len(e.buf)
}

// Prev moves the cursor n characters left.
func (e *Edit) Prev(n int) {
	for ; n > 0 && e.cursor > 0; n-- {
		_, size := utf8.DecodeLastRune(e.buf[:e.cursor])
		e.cursor -= size
	}
}

// Next moves the cursor n characters right.
func (e *Edit) Next(n int) {
	for ; n > 0 && e.cursor < len(e.buf); n-- {
		_, size := utf8.DecodeRune(e.buf[e.cursor:])
		e.cursor += size
	}
}

// PrevWord moves the cursor left to just after the nearest boundary
// character, ignoring the character directly left of the cursor. Without a
// boundary the cursor moves to the start.
func (e *Edit) PrevWord(boundaries []rune) {
	if e.cursor == 0 {
		return
	}
	_, skip := utf8.DecodeLastRune(e.buf[:e.cursor])
	for i := e.cursor - skip; i > 0; {
		r, size := utf8.DecodeLastRune(e.buf[:i])
		if slices.Contains(boundaries, r) {
			e.cursor = i
			return
		}
		i -= size
	}
	e.cursor = 0
}

// NextWord moves the cursor right to just past the nearest boundary
// character, ignoring the character under the cursor. Without a boundary the
// cursor moves to the end.
func (e *Edit) NextWord(boundaries []rune) {
	if e.AtEnd() {
		return
	}
	_, skip := utf8.DecodeRune(e.buf[e.cursor:])
	for i := e.cursor + skip; i < len(e.buf); {
		r, size := utf8.DecodeRune(e.buf[i:])
		if slices.Contains(boundaries, r) {
			e.cursor = i + size
			return
		}
		i += size
	}
	e.cursor = len(e.buf)
}

// GoString implements fmt.GoStringer for debugging.
func (e *Edit) GoString() string {
	left, right := e.Split()
	return fmt.Sprintf("Edit(%q|%q)", left, right)
}
