package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyshell/internal/input/key"
)

// Translator converts tcell events into key events. tcell reports a
// bracketed paste as a start marker, the pasted keys, then an end marker;
// Translator collects those keys into a single paste event.
type Translator struct {
	pasting bool
	paste   strings.Builder
}

// Translate converts ev. It returns false for events with no key meaning
// and while a paste is being collected.
func (t *Translator) Translate(ev tcell.Event) (key.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventPaste:
		if e.Start() {
			t.pasting = true
			t.paste.Reset()
			return key.Event{}, false
		}
		if !t.pasting {
			return key.Event{}, false
		}
		t.pasting = false
		text := t.paste.String()
		t.paste.Reset()
		return key.NewPasteEvent(text), true

	case *tcell.EventKey:
		if t.pasting {
			t.collect(e)
			return key.Event{}, false
		}
		return FromTcell(e)
	}
	return key.Event{}, false
}

// Pasting reports whether a paste is being collected.
func (t *Translator) Pasting() bool {
	return t.pasting
}

func (t *Translator) collect(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyRune:
		t.paste.WriteRune(e.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		t.paste.WriteByte('\n')
	case tcell.KeyTab:
		t.paste.WriteByte('\t')
	}
}

// FromTcell converts a tcell key event into the event key.Decode would
// produce for the same keystroke. It returns false for keys the shell
// does not use, such as function keys and a lone Escape.
func FromTcell(e *tcell.EventKey) (key.Event, bool) {
	mods := fromTcellMods(e.Modifiers())
	k := e.Key()

	switch {
	case k == tcell.KeyRune:
		r := e.Rune()
		if r == ' ' {
			return key.NewSpecialEvent(key.KeySpace, mods.Without(key.ModShift)), true
		}
		return key.NewRuneEvent(r, mods.Without(key.ModShift|key.ModCtrl)), true

	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlZ:
		// Control characters, including Tab, Enter and ^H backspace.
		return key.NewRuneEvent('`'+rune(k), mods.Without(key.ModShift).With(key.ModCtrl)), true

	case k == tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods.Without(key.ModCtrl|key.ModShift)), true
	}

	special, ok := tcellSpecial[k]
	if !ok {
		return key.Event{}, false
	}
	// Terminals report Ctrl+arrow like Shift+arrow.
	if mods.HasCtrl() {
		mods = mods.Without(key.ModCtrl).With(key.ModShift)
	}
	return key.NewSpecialEvent(special, mods), true
}

var tcellSpecial = map[tcell.Key]key.Key{
	tcell.KeyUp:     key.KeyUp,
	tcell.KeyDown:   key.KeyDown,
	tcell.KeyLeft:   key.KeyLeft,
	tcell.KeyRight:  key.KeyRight,
	tcell.KeyHome:   key.KeyHome,
	tcell.KeyEnd:    key.KeyEnd,
	tcell.KeyDelete: key.KeyDelete,
}

func fromTcellMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
