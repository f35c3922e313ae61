package keymap

// Action names understood by the shell.
const (
	ActionHistoryPrev      = "history.prev"
	ActionHistoryNext      = "history.next"
	ActionCursorLeft       = "cursor.left"
	ActionCursorRight      = "cursor.right"
	ActionCursorStart      = "cursor.start"
	ActionCursorEnd        = "cursor.end"
	ActionCursorWordLeft   = "cursor.wordLeft"
	ActionCursorWordRight  = "cursor.wordRight"
	ActionEditClear        = "edit.clear"
	ActionEditRemoveChar   = "edit.removeChar"
	ActionEditRemoveWord   = "edit.removeWord"
	ActionEditRemoveEnd    = "edit.removeEnd"
	ActionEditDelete       = "edit.deleteForward"
	ActionShellExecute     = "shell.execute"
	ActionShellExit        = "shell.exit"
	ActionAcceptSuggestion = "shell.acceptSuggestion"
)

var knownActions = map[string]bool{
	ActionHistoryPrev:      true,
	ActionHistoryNext:      true,
	ActionCursorLeft:       true,
	ActionCursorRight:      true,
	ActionCursorStart:      true,
	ActionCursorEnd:        true,
	ActionCursorWordLeft:   true,
	ActionCursorWordRight:  true,
	ActionEditClear:        true,
	ActionEditRemoveChar:   true,
	ActionEditRemoveWord:   true,
	ActionEditRemoveEnd:    true,
	ActionEditDelete:       true,
	ActionShellExecute:     true,
	ActionShellExit:        true,
	ActionAcceptSuggestion: true,
}

// IsAction reports whether name is a known action.
func IsAction(name string) bool {
	return knownActions[name]
}
