package keymap

// Default returns the built-in shell bindings.
func Default() *Keymap {
	return &Keymap{
		Name:   "default",
		Source: "default",
		Bindings: []Binding{
			// History
			{Keys: "Up", Action: ActionHistoryPrev, Description: "Recall older command", Category: "History"},
			{Keys: "C-p", Action: ActionHistoryPrev, Description: "Recall older command", Category: "History"},
			{Keys: "Down", Action: ActionHistoryNext, Description: "Recall newer command", Category: "History"},
			{Keys: "C-n", Action: ActionHistoryNext, Description: "Recall newer command", Category: "History"},

			// Movement
			{Keys: "Left", Action: ActionCursorLeft, Description: "Move left", Category: "Movement"},
			{Keys: "C-b", Action: ActionCursorLeft, Description: "Move left", Category: "Movement"},
			{Keys: "Right", Action: ActionCursorRight, Description: "Move right", Category: "Movement"},
			{Keys: "C-f", Action: ActionCursorRight, Description: "Move right", Category: "Movement"},
			{Keys: "S-Left", Action: ActionCursorWordLeft, Description: "Move to previous word", Category: "Movement"},
			{Keys: "M-b", Action: ActionCursorWordLeft, Description: "Move to previous word", Category: "Movement"},
			{Keys: "S-Right", Action: ActionCursorWordRight, Description: "Move to next word", Category: "Movement"},
			{Keys: "M-f", Action: ActionCursorWordRight, Description: "Move to next word", Category: "Movement"},
			{Keys: "Home", Action: ActionCursorStart, Description: "Move to line start", Category: "Movement"},
			{Keys: "C-a", Action: ActionCursorStart, Description: "Move to line start", Category: "Movement"},
			{Keys: "End", Action: ActionCursorEnd, Description: "Move to line end", Category: "Movement"},
			{Keys: "C-e", Action: ActionCursorEnd, Description: "Move to line end", Category: "Movement"},

			// Editing
			{Keys: "Backspace", Action: ActionEditRemoveChar, Description: "Delete previous character", Category: "Editing"},
			{Keys: "C-h", Action: ActionEditRemoveChar, Description: "Delete previous character", Category: "Editing"},
			{Keys: "Delete", Action: ActionEditDelete, Description: "Delete character under cursor", Category: "Editing"},
			{Keys: "C-w", Action: ActionEditRemoveWord, Description: "Delete previous word to end of line", Category: "Editing"},
			{Keys: "M-Backspace", Action: ActionEditRemoveWord, Description: "Delete previous word to end of line", Category: "Editing"},
			{Keys: "C-k", Action: ActionEditRemoveEnd, Description: "Delete to end of line", Category: "Editing"},
			{Keys: "C-c", Action: ActionEditClear, Description: "Clear the line", Category: "Editing"},
			{Keys: "Tab", Action: ActionAcceptSuggestion, Description: "Complete the program name", Category: "Editing"},

			// Shell
			{Keys: "Enter", Action: ActionShellExecute, Description: "Run the command", Category: "Shell"},
			{Keys: "C-j", Action: ActionShellExecute, Description: "Run the command", Category: "Shell"},
			{Keys: "C-d", Action: ActionShellExit, Description: "Exit the shell", Category: "Shell"},
		},
	}
}
