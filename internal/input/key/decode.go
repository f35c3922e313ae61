package key

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"
)

const esc = 0x1b

// Bracketed paste envelope.
var (
	pasteStart = []byte("\x1b[200~")
	pasteEnd   = []byte("\x1b[201~")
)

// Decode maps one raw terminal read to an event.
//
// b must hold exactly one key press or one bracketed paste, as delivered by
// a single read. A sequence that is truncated or unknown yields false; the
// caller should read again rather than treat it as an error.
func Decode(b []byte) (Event, bool) {
	if ev, ok := decodePaste(b); ok {
		return ev, true
	}

	var (
		ev Event
		ok bool
	)
	switch len(b) {
	case 1:
		ev, ok = decodeByte(b[0])
	case 2:
		ev, ok = decodeMeta(b)
	case 3:
		ev, ok = decodeCSI3(b)
	case 4:
		ev, ok = decodeCSI4(b)
	case 6:
		ev, ok = decodeCSI6(b)
	}
	if ok {
		return ev, true
	}
	return decodeRune(b)
}

func decodePaste(b []byte) (Event, bool) {
	if len(b) < len(pasteStart)+len(pasteEnd) ||
		!bytes.HasPrefix(b, pasteStart) || !bytes.HasSuffix(b, pasteEnd) {
		return Event{}, false
	}
	body := b[len(pasteStart) : len(b)-len(pasteEnd)]
	return NewPasteEvent(strings.ToValidUTF8(string(body), string(utf8.RuneError))), true
}

// decodeByte handles a lone byte. Bytes 0 through 26 are Ctrl plus the
// letter at the same position after '`', so 1 is C-a and 13 is C-m.
func decodeByte(c byte) (Event, bool) {
	switch {
	case c <= 26:
		return NewRuneEvent(rune('`'+c), ModCtrl), true
	case c == 127:
		return NewSpecialEvent(KeyBackspace, ModNone), true
	case c == ' ':
		return NewSpecialEvent(KeySpace, ModNone), true
	case c > ' ' && c < 127:
		return NewRuneEvent(rune(c), ModNone), true
	}
	return Event{}, false
}

// decodeMeta handles ESC followed by one byte, which is how terminals send
// Alt combinations.
func decodeMeta(b []byte) (Event, bool) {
	if b[0] != esc {
		return Event{}, false
	}
	ev, ok := decodeByte(b[1])
	if !ok {
		return Event{}, false
	}
	return ev.WithModifier(ModMeta), true
}

func csiKey(c byte) (Key, bool) {
	switch c {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	case 'H':
		return KeyHome, true
	case 'F':
		return KeyEnd, true
	}
	return KeyNone, false
}

// decodeCSI3 handles ESC [ X and the application-mode ESC O X.
func decodeCSI3(b []byte) (Event, bool) {
	if b[0] != esc || (b[1] != '[' && b[1] != 'O') {
		return Event{}, false
	}
	if k, ok := csiKey(b[2]); ok {
		return NewSpecialEvent(k, ModNone), true
	}
	return Event{}, false
}

func tildeKey(c byte) (Key, bool) {
	switch c {
	case '1', '7':
		return KeyHome, true
	case '3':
		return KeyDelete, true
	case '4', '8':
		return KeyEnd, true
	}
	return KeyNone, false
}

// decodeCSI4 handles ESC [ n ~.
func decodeCSI4(b []byte) (Event, bool) {
	if b[0] != esc || b[1] != '[' || b[3] != '~' {
		return Event{}, false
	}
	if k, ok := tildeKey(b[2]); ok {
		return NewSpecialEvent(k, ModNone), true
	}
	return Event{}, false
}

// decodeCSI6 handles ESC [ 1 ; m X and ESC [ n ; m ~, where m encodes the
// modifiers as one plus a bit set of Shift=1, Alt=2 and Ctrl=4. Ctrl is
// reported as Shift: both select the word-wise variant of a motion key.
func decodeCSI6(b []byte) (Event, bool) {
	if b[0] != esc || b[1] != '[' || b[3] != ';' {
		return Event{}, false
	}
	mods, ok := csiModifiers(b[4])
	if !ok {
		return Event{}, false
	}

	var k Key
	if b[2] == '1' {
		k, ok = csiKey(b[5])
	} else if b[5] == '~' {
		k, ok = tildeKey(b[2])
	} else {
		ok = false
	}
	if !ok {
		return Event{}, false
	}
	return NewSpecialEvent(k, mods), true
}

func csiModifiers(c byte) (Modifier, bool) {
	if c < '2' || c > '8' {
		return ModNone, false
	}
	bits := c - '1'
	var mods Modifier
	if bits&1 != 0 || bits&4 != 0 {
		mods = mods.With(ModShift)
	}
	if bits&2 != 0 {
		mods = mods.With(ModMeta)
	}
	return mods, true
}

// decodeRune handles a single printable character of any encoded width.
func decodeRune(b []byte) (Event, bool) {
	r, size := utf8.DecodeRune(b)
	if size != len(b) || r == utf8.RuneError || unicode.IsControl(r) {
		return Event{}, false
	}
	if r == ' ' {
		return NewSpecialEvent(KeySpace, ModNone), true
	}
	return NewRuneEvent(r, ModNone), true
}
