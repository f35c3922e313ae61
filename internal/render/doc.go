// Package render draws the keyshell prompt line.
//
// Rendering is a pure function of the edit buffer, its parsed command and
// the current program suggestion. It produces one string of text and ANSI
// control sequences that clears the terminal line, redraws it and leaves
// the cursor where the buffer cursor is.
package render
