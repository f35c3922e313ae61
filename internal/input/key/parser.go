package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Key names: "Backspace", "Delete", "Space", "Home", "End", "Up"
//   - With modifiers: "Ctrl+W", "Alt+B", "Shift+Left"
//   - Vim-style: "<C-w>", "<M-b>", "<S-Left>", "<CR>", "<BS>"
//   - Vim-style without brackets: "C-w", "M-Backspace"
//
// The result is the event Decode produces for the same key, so "A" carries
// no Shift and "Enter" is Ctrl+m.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	if len(spec) > 1 && strings.Contains(spec[1:], "-") {
		return parseVimStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// parseVimStyle parses Vim-style notation like "C-w", "M-b", "CR", "BS"
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	// A trailing "-" is the minus key, as in "M--".
	var parts []string
	if strings.HasSuffix(inner, "--") {
		parts = append(strings.Split(inner[:len(inner)-2], "-"), "-")
	} else {
		parts = strings.Split(inner, "-")
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case "c":
			mods = mods.With(ModCtrl)
		case "s":
			mods = mods.With(ModShift)
		case "m", "a":
			mods = mods.With(ModMeta)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseModifierStyle parses "Ctrl+W" style notation
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	if strings.HasSuffix(spec, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}
	if len(parts) < 2 {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(strings.TrimSpace(parts[len(parts)-1]), mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	// Terminals deliver these as control characters.
	switch strings.ToLower(keyPart) {
	case "cr", "return", "enter":
		return NewRuneEvent('m', mods.With(ModCtrl)), nil
	case "nl", "lf":
		return NewRuneEvent('j', mods.With(ModCtrl)), nil
	case "tab":
		return NewRuneEvent('i', mods.With(ModCtrl)), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	case "bar":
		return NewRuneEvent('|', mods), nil
	case "bslash":
		return NewRuneEvent('\\', mods), nil
	}

	if key := KeyFromName(keyPart); key != KeyNone {
		if key == KeyPaste && mods != ModNone {
			return Event{}, fmt.Errorf("%w: paste takes no modifiers", ErrInvalidSpec)
		}
		return NewSpecialEvent(key, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		// Control characters carry no case.
		if mods.HasCtrl() && r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return NewRuneEvent(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// FormatSpec formats a key event as a specification string that Parse
// reads back to the same event.
func FormatSpec(event Event) string {
	return event.Spec()
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return FormatSpec(event), nil
}
