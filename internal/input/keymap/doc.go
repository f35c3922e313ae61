// Package keymap maps decoded key events to shell actions.
//
// # Key Concepts
//
// Keymap: A named collection of bindings, such as the defaults or the
// user's overrides from the configuration file.
//
// Binding: Maps one key specification to an action name.
//
// Registry: Holds the active keymaps in priority order and resolves an
// event to the binding of the highest-priority keymap that defines it.
//
// # Key Specifications
//
// Keys are written in any format accepted by key.Parse:
//
//	"C-w"      - Ctrl+W (Vim notation)
//	"<M-b>"    - Meta+B (angle bracket notation)
//	"Ctrl+W"   - Ctrl+W (readable notation)
//	"S-Left"   - Shift+Left
//	"Enter"    - the Ctrl+M control character
//
// # Usage
//
//	registry := keymap.NewRegistry()
//	registry.Register(keymap.Default())
//	user, err := keymap.FromConfig("user", cfg.Keys)
//	if err != nil {
//	    return err
//	}
//	registry.Register(user.WithPriority(10))
//
//	if b := registry.Lookup(ev); b != nil {
//	    // Execute b.Action
//	}
package keymap
