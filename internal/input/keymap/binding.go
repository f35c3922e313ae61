package keymap

import (
	"github.com/dshills/keyshell/internal/input/key"
)

// Binding maps one key to an action.
type Binding struct {
	// Keys is the key spec, in any form key.Parse accepts:
	// "C-w", "<M-b>", "Ctrl+W", "S-Left", "Backspace".
	Keys string

	// Action is the action name, such as "cursor.left" or "shell.execute".
	Action string

	// Description is shown in binding listings.
	Description string

	// Category groups the binding in listings. Empty means "Other".
	Category string
}

// ParsedBinding is a binding with its key already parsed.
type ParsedBinding struct {
	Binding
	Event key.Event
}

// Match reports whether ev presses this binding's key.
func (pb *ParsedBinding) Match(ev key.Event) bool {
	return pb != nil && pb.Event.Equals(ev)
}

// BindingCategory is one group of a listing.
type BindingCategory struct {
	Name     string
	Bindings []Binding
}

// GroupByCategory splits bindings by Category, keeping the order in which
// categories and bindings first appear.
func GroupByCategory(bindings []Binding) []BindingCategory {
	var groups []BindingCategory
	index := make(map[string]int)
	for _, b := range bindings {
		name := b.Category
		if name == "" {
			name = "Other"
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, BindingCategory{Name: name})
		}
		groups[i].Bindings = append(groups[i].Bindings, b)
	}
	return groups
}
