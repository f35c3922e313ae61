package key

import (
	"fmt"
	"strings"
)

// Event is one decoded key press or one bracketed paste.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Text is the pasted text for KeyPaste events.
	Text string

	// Modifiers holds the modifier flags. Paste events never carry any.
	Modifiers Modifier
}

// NewRuneEvent returns the event for character r.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent returns the event for a named key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// NewPasteEvent returns a paste event carrying text.
func NewPasteEvent(text string) Event {
	return Event{Key: KeyPaste, Text: text}
}

// IsRune reports whether e is a character key.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPaste reports whether e is a bracketed paste.
func (e Event) IsPaste() bool {
	return e.Key == KeyPaste
}

// String returns a short name such as "a", "C-w", "M-b", "S-Left" or
// "Paste(12)". Shift is not shown for characters, where it is already part
// of the rune.
func (e Event) String() string {
	if e.IsPaste() {
		return fmt.Sprintf("Paste(%d)", len(e.Text))
	}
	if e.Key == KeyRune && e.Rune == ' ' {
		return e.prefix() + "Space"
	}
	return e.prefix() + e.label()
}

// Spec returns the bracketed form Parse accepts, such as "<C-w>" or
// "<S-Left>". Unmodified characters are returned bare.
func (e Event) Spec() string {
	switch {
	case e.IsPaste():
		return "<Paste>"
	case e.IsRune() && !e.Modifiers.Has(ModCtrl|ModMeta):
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}
	return "<" + e.prefix() + e.label() + ">"
}

func (e Event) prefix() string {
	var b strings.Builder
	if e.Modifiers.HasCtrl() {
		b.WriteString("C-")
	}
	if e.Modifiers.HasMeta() {
		b.WriteString("M-")
	}
	if e.Modifiers.HasShift() && e.Key != KeyRune {
		b.WriteString("S-")
	}
	return b.String()
}

func (e Event) label() string {
	switch e.Key {
	case KeyRune:
		return string(e.Rune)
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	}
	return e.Key.String()
}

// Equals reports whether e and other are the same key press. Paste text is
// not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// WithModifier returns a copy of e with mod added.
func (e Event) WithModifier(mod Modifier) Event {
	e.Modifiers = e.Modifiers.With(mod)
	return e
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	if e.IsPaste() {
		return fmt.Sprintf("Event{Key: Paste, Text: %q}", e.Text)
	}
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key, e.Rune, e.Modifiers)
}
