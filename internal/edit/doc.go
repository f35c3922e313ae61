// Package edit implements the shell's single-line edit buffer.
//
// An Edit is a UTF-8 byte buffer plus a cursor. The cursor is a byte offset
// that is always on a character boundary, and every motion saturates at the
// ends of the buffer instead of failing.
//
// Insertion is aware of the command-line syntax: typing a quote in front of
// the quote that closes the value being typed steps over it, and whitespace
// is never doubled by typing. Word motion uses a caller-supplied set of
// boundary characters rather than the tokenizer's notion of a word.
package edit
