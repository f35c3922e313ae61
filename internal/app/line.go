package app

import (
	"github.com/dshills/keyshell/internal/edit"
	"github.com/dshills/keyshell/internal/history"
	"github.com/dshills/keyshell/internal/input/key"
	"github.com/dshills/keyshell/internal/input/keymap"
	"github.com/dshills/keyshell/internal/paths"
)

// Outcome is what the session loop must do after an event.
type Outcome uint8

const (
	// OutcomeNone means only the line changed.
	OutcomeNone Outcome = iota
	// OutcomeExecute means the line should run.
	OutcomeExecute
	// OutcomeExit means the shell should end.
	OutcomeExit
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeExecute:
		return "execute"
	case OutcomeExit:
		return "exit"
	default:
		return "none"
	}
}

// Line is the editing state of the prompt: the buffer, history recall and
// the current program suggestion. It has no terminal and can be driven
// entirely from tests.
type Line struct {
	Edit    *edit.Edit
	History *history.History

	// WordChars are the word boundaries for word-wise actions.
	WordChars []rune

	// Summary is the suggestion shown for the current buffer, used by
	// acceptSuggestion.
	Summary paths.Summary

	// draft holds the typed line while history is being recalled.
	draft string
}

// NewLine returns an empty line over hist.
func NewLine(hist *history.History, wordChars string) *Line {
	return &Line{
		Edit:      edit.New(),
		History:   hist,
		WordChars: []rune(wordChars),
	}
}

// Dispatch applies ev to the line. Bound keys run their action through
// keys; unbound plain runes, Space and pastes insert text. Everything else
// is ignored.
func (l *Line) Dispatch(keys *keymap.Registry, ev key.Event) Outcome {
	if action, ok := keys.Action(ev); ok {
		return l.Apply(action)
	}

	switch {
	case ev.IsPaste():
		l.Edit.InsertString(ev.Text)
	case ev.Key == key.KeySpace && ev.Modifiers.IsEmpty():
		l.Edit.Insert(' ')
	case ev.IsRune() && ev.Modifiers.IsEmpty():
		l.Edit.Insert(ev.Rune)
	}
	return OutcomeNone
}

// Apply runs a named action.
func (l *Line) Apply(action string) Outcome {
	switch action {
	case keymap.ActionHistoryPrev:
		l.recall(l.History.Older)
	case keymap.ActionHistoryNext:
		l.recall(l.History.Newer)
	case keymap.ActionCursorLeft:
		l.Edit.Prev(1)
	case keymap.ActionCursorRight:
		l.Edit.Next(1)
	case keymap.ActionCursorStart:
		l.Edit.MoveStart()
	case keymap.ActionCursorEnd:
		l.Edit.MoveEnd()
	case keymap.ActionCursorWordLeft:
		l.Edit.PrevWord(l.WordChars)
	case keymap.ActionCursorWordRight:
		l.Edit.NextWord(l.WordChars)
	case keymap.ActionEditClear:
		l.Clear()
	case keymap.ActionEditRemoveChar:
		l.Edit.Remove()
	case keymap.ActionEditRemoveWord:
		l.Edit.RemoveWord(l.WordChars)
	case keymap.ActionEditRemoveEnd:
		l.Edit.RemoveEnd()
	case keymap.ActionEditDelete:
		l.Edit.Delete()
	case keymap.ActionAcceptSuggestion:
		l.acceptSuggestion()
	case keymap.ActionShellExecute:
		if !l.Edit.IsEmpty() {
			return OutcomeExecute
		}
	case keymap.ActionShellExit:
		return OutcomeExit
	}
	return OutcomeNone
}

// recall moves through history with step and shows the recalled entry,
// or the saved draft once recall is back at the typed line.
func (l *Line) recall(step func()) {
	from := l.History.Position()
	if from == 0 {
		l.draft = l.Edit.String()
	}
	step()
	if from == 0 && l.History.Position() == 0 {
		return
	}
	if text, err := l.History.Get(); err == nil {
		l.Edit.Set(text)
		return
	}
	l.Edit.Set(l.draft)
}

// acceptSuggestion completes a partially typed program when the cursor is
// at the end of the line.
func (l *Line) acceptSuggestion() {
	if !l.Summary.IsPartial() || !l.Edit.AtEnd() {
		return
	}
	l.Edit.InsertString(l.Summary.Rest)
	l.Summary = paths.Summary{}
}

// Clear empties the buffer and ends any history recall.
func (l *Line) Clear() {
	l.Edit.Clear()
	l.History.Reset()
	l.draft = ""
}

// Take returns the buffer contents and clears the line for the next
// prompt.
func (l *Line) Take() string {
	text := l.Edit.Take()
	l.History.Reset()
	l.draft = ""
	return text
}
