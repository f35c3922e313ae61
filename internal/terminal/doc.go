// Package terminal owns the controlling terminal of a keyshell session.
//
// Session switches the tty between raw and cooked mode, turns bracketed
// paste on and off with it, and reads input one chunk at a time so that
// each chunk can be handed to key.Decode. Reads are demand driven: nothing
// is read from the tty between ReadChunk calls, which leaves the terminal
// to child processes while a command runs.
//
// Translator adapts tcell key and paste events into the same key.Event
// values so a tcell front end can drive the same keymap.
package terminal
