package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyshell/internal/input/key"
)

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
		ok   bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), key.NewRuneEvent('a', key.ModNone), true},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), key.NewRuneEvent('A', key.ModNone), true},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModAlt), key.NewRuneEvent('b', key.ModMeta), true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), key.NewSpecialEvent(key.KeySpace, key.ModNone), true},
		{"ctrl w", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), key.NewRuneEvent('w', key.ModCtrl), true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewRuneEvent('m', key.ModCtrl), true},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.NewRuneEvent('i', key.ModCtrl), true},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone), true},
		{"alt backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModAlt), key.NewSpecialEvent(key.KeyBackspace, key.ModMeta), true},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyUp, key.ModNone), true},
		{"ctrl left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), key.NewSpecialEvent(key.KeyLeft, key.ModShift), true},
		{"shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyRight, key.ModShift), true},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyDelete, key.ModNone), true},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyHome, key.ModNone), true},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), key.Event{}, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.Event{}, false},
	}

	for _, tt := range tests {
		got, ok := FromTcell(tt.ev)
		if ok != tt.ok || (ok && !got.Equals(tt.want)) {
			t.Errorf("%s: FromTcell() = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFromTcellMatchesDecode(t *testing.T) {
	tests := []struct {
		raw string
		ev  *tcell.EventKey
	}{
		{"\x17", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl)},
		{"\r", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)},
		{"\x7f", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)},
		{"\x1b[D", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)},
		{"\x1bb", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModAlt)},
		{"\x1b[1;5C", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModCtrl)},
	}
	for _, tt := range tests {
		want, ok := key.Decode([]byte(tt.raw))
		if !ok {
			t.Fatalf("Decode(%q) failed", tt.raw)
		}
		got, ok := FromTcell(tt.ev)
		if !ok || !got.Equals(want) {
			t.Errorf("FromTcell() = %v, want %v as decoded from %q", got, want, tt.raw)
		}
	}
}

func TestTranslatorPaste(t *testing.T) {
	var tr Translator

	feed := []tcell.Event{
		tcell.NewEventPaste(true),
		tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone),
	}
	for _, ev := range feed {
		if got, ok := tr.Translate(ev); ok {
			t.Fatalf("Translate() during paste = %v, want nothing", got)
		}
	}
	if !tr.Pasting() {
		t.Fatal("Pasting() = false inside paste")
	}

	got, ok := tr.Translate(tcell.NewEventPaste(false))
	if !ok || !got.IsPaste() || got.Text != "ls\n\té" {
		t.Errorf("Translate(paste end) = %#v, %v, want Paste(\"ls\\n\\té\")", got, ok)
	}
	if tr.Pasting() {
		t.Error("Pasting() = true after paste end")
	}

	// Keys outside a paste pass through.
	got, ok = tr.Translate(tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl))
	if !ok || !got.Equals(key.NewRuneEvent('a', key.ModCtrl)) {
		t.Errorf("Translate(C-a) = %v, %v", got, ok)
	}

	// A stray end marker and other events are ignored.
	if _, ok := tr.Translate(tcell.NewEventPaste(false)); ok {
		t.Error("Translate(stray paste end) = true, want false")
	}
	if _, ok := tr.Translate(tcell.NewEventResize(80, 24)); ok {
		t.Error("Translate(resize) = true, want false")
	}
}
