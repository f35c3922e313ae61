package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/keyshell/internal/input/key"
)

// FromConfig builds a keymap from a key-spec to action table, such as the
// [keys] section of the configuration file. Keys are normalized and added
// in sorted order so that equivalent specs resolve deterministically.
func FromConfig(name string, keys map[string]string) (*Keymap, error) {
	specs := make([]string, 0, len(keys))
	for spec := range keys {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	km := NewKeymap(name).WithSource("config")
	for _, spec := range specs {
		action := strings.TrimSpace(keys[spec])
		if !IsAction(action) {
			return nil, fmt.Errorf("key %q: unknown action %q", spec, action)
		}
		normalized, err := key.NormalizeSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", spec, err)
		}
		km.AddBinding(Binding{Keys: normalized, Action: action, Category: "User"})
	}
	return km, nil
}
