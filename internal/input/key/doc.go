// Package key provides key event types, key specification parsing and the
// terminal input decoder.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a key (navigation keys, Backspace/Delete, Space,
//     a character, or a bracketed paste)
//   - Modifier: Represents modifier keys (Ctrl, Meta, Shift)
//   - Event: A single key press with modifiers, or a pasted text
//
// # Decoding
//
// Decode maps one raw chunk read from a terminal in raw mode to at most one
// Event. Control bytes become Ctrl-modified characters, ESC-prefixed bytes
// become Meta-modified keys, and the common CSI and SS3 sequences for arrows,
// Home, End and Delete are recognized. Anything else yields no event.
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "Backspace", "Home", "Enter"
//   - With modifiers: "Ctrl+W", "Alt+B", "Shift+Left"
//   - Vim-style: "<C-w>", "<M-b>", "<S-Left>", "<CR>", or without brackets "C-w"
//
// Names that a terminal delivers as control characters are parsed to the
// event the decoder produces for them: "Enter" is Ctrl+m and "Tab" is Ctrl+i.
package key
