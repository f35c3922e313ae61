package app

import (
	"testing"

	"github.com/dshills/keyshell/internal/history"
	"github.com/dshills/keyshell/internal/input/key"
	"github.com/dshills/keyshell/internal/input/keymap"
	"github.com/dshills/keyshell/internal/paths"
)

func newTestRegistry(t *testing.T) *keymap.Registry {
	t.Helper()
	r := keymap.NewRegistry()
	if err := r.Register(keymap.Default()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return r
}

func typeString(l *Line, keys *keymap.Registry, s string) {
	for _, r := range s {
		ev := key.NewRuneEvent(r, key.ModNone)
		if r == ' ' {
			ev = key.NewSpecialEvent(key.KeySpace, key.ModNone)
		}
		l.Dispatch(keys, ev)
	}
}

func TestLineDispatchInsert(t *testing.T) {
	keys := newTestRegistry(t)

	tests := []struct {
		name   string
		events []key.Event
		want   string
	}{
		{"runes", []key.Event{key.NewRuneEvent('l', key.ModNone), key.NewRuneEvent('s', key.ModNone)}, "ls"},
		{"space", []key.Event{key.NewRuneEvent('a', key.ModNone), key.NewSpecialEvent(key.KeySpace, key.ModNone), key.NewRuneEvent('b', key.ModNone)}, "a b"},
		{"paste", []key.Event{key.NewPasteEvent("echo hi")}, "echo hi"},
		{"unbound ctrl ignored", []key.Event{key.NewRuneEvent('a', key.ModNone), key.NewRuneEvent('z', key.ModCtrl)}, "a"},
		{"unbound meta ignored", []key.Event{key.NewRuneEvent('x', key.ModMeta)}, ""},
		{"backspace", []key.Event{key.NewRuneEvent('a', key.ModNone), key.NewRuneEvent('b', key.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)}, "a"},
		{"clear", []key.Event{key.NewPasteEvent("rm -rf"), key.NewRuneEvent('c', key.ModCtrl)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine(history.New(0), "/")
			for _, ev := range tt.events {
				if got := l.Dispatch(keys, ev); got != OutcomeNone {
					t.Errorf("Dispatch(%v) = %v, want none", ev, got)
				}
			}
			if got := l.Edit.String(); got != tt.want {
				t.Errorf("buffer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineDispatchOutcomes(t *testing.T) {
	keys := newTestRegistry(t)
	enter := key.NewRuneEvent('m', key.ModCtrl)
	ctrlD := key.NewRuneEvent('d', key.ModCtrl)

	l := NewLine(history.New(0), "/")
	if got := l.Dispatch(keys, enter); got != OutcomeNone {
		t.Errorf("Enter on empty line = %v, want none", got)
	}

	typeString(l, keys, "ls")
	if got := l.Dispatch(keys, enter); got != OutcomeExecute {
		t.Errorf("Enter = %v, want execute", got)
	}
	if got := l.Dispatch(keys, ctrlD); got != OutcomeExit {
		t.Errorf("C-d = %v, want exit", got)
	}
}

func TestLineHistoryRecall(t *testing.T) {
	keys := newTestRegistry(t)
	up := key.NewSpecialEvent(key.KeyUp, key.ModNone)
	down := key.NewSpecialEvent(key.KeyDown, key.ModNone)

	hist := history.New(0)
	hist.Push("one")
	hist.Push("two")

	l := NewLine(hist, "/")
	typeString(l, keys, "dr")

	steps := []struct {
		ev   key.Event
		want string
	}{
		{up, "two"},
		{up, "one"},
		{up, "one"},
		{down, "two"},
		{down, "dr"},
		{down, "dr"},
	}
	for i, step := range steps {
		l.Dispatch(keys, step.ev)
		if got := l.Edit.String(); got != step.want {
			t.Errorf("step %d: buffer = %q, want %q", i, got, step.want)
		}
	}
}

func TestLineNewerWithoutRecallKeepsCursor(t *testing.T) {
	keys := newTestRegistry(t)
	left := key.NewSpecialEvent(key.KeyLeft, key.ModNone)
	down := key.NewSpecialEvent(key.KeyDown, key.ModNone)

	hist := history.New(0)
	hist.Push("one")

	l := NewLine(hist, "/")
	typeString(l, keys, "draft")
	l.Dispatch(keys, left)
	l.Dispatch(keys, left)
	l.Dispatch(keys, down)

	if got, want := l.Edit.String(), "draft"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if got, want := l.Edit.Cursor(), 3; got != want {
		t.Errorf("Cursor() = %d, want %d", got, want)
	}
	if got := hist.Position(); got != 0 {
		t.Errorf("Position() = %d, want 0", got)
	}
}

func TestLineTakeResetsRecall(t *testing.T) {
	keys := newTestRegistry(t)
	hist := history.New(0)
	hist.Push("make test")

	l := NewLine(hist, "/")
	l.Dispatch(keys, key.NewSpecialEvent(key.KeyUp, key.ModNone))

	if got := l.Take(); got != "make test" {
		t.Errorf("Take() = %q, want %q", got, "make test")
	}
	if hist.Position() != 0 {
		t.Errorf("Position() = %d after Take, want 0", hist.Position())
	}
	if !l.Edit.IsEmpty() {
		t.Errorf("buffer = %q after Take, want empty", l.Edit.String())
	}
}

func TestLineAcceptSuggestion(t *testing.T) {
	keys := newTestRegistry(t)
	tab := key.NewRuneEvent('i', key.ModCtrl)
	partial := paths.Summary{Kind: paths.Partial, Match: "git", Rest: "t"}

	tests := []struct {
		name    string
		typed   string
		moveEnd bool
		summary paths.Summary
		want    string
	}{
		{"completes at end", "gi", false, partial, "git"},
		{"cursor not at end", "gi", true, partial, "gi"},
		{"exact match", "git", false, paths.Summary{Kind: paths.Exact, Match: "git"}, "git"},
		{"no match", "zz", false, paths.Summary{}, "zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine(history.New(0), "/")
			typeString(l, keys, tt.typed)
			if tt.moveEnd {
				l.Edit.Prev(1)
			}
			l.Summary = tt.summary

			l.Dispatch(keys, tab)
			if got := l.Edit.String(); got != tt.want {
				t.Errorf("buffer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineWordMovement(t *testing.T) {
	keys := newTestRegistry(t)
	l := NewLine(history.New(0), "/ ")
	l.Dispatch(keys, key.NewPasteEvent("cat /etc/hosts"))

	l.Dispatch(keys, key.NewRuneEvent('w', key.ModCtrl))
	if got := l.Edit.String(); got != "cat /etc/" {
		t.Errorf("after C-w buffer = %q, want %q", got, "cat /etc/")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{OutcomeNone, "none"},
		{OutcomeExecute, "execute"},
		{OutcomeExit, "exit"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}
