package key

import "strings"

// Modifier is a set of independent modifier flags.
//
// Terminals send Alt (Option on macOS) as an ESC prefix, which cannot be
// told apart from Meta, so both are reported as ModMeta.
type Modifier uint8

// Modifier flags.
const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModMeta
)

// modifierNames lists the flags in display order.
var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModMeta, "Meta"},
	{ModShift, "Shift"},
}

// Has reports whether m contains any flag in mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift reports whether Shift is set.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasCtrl reports whether Ctrl is set.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasMeta reports whether Meta is set.
func (m Modifier) HasMeta() bool { return m.Has(ModMeta) }

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m with mod removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty reports whether no flag is set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String joins the set flags with "+", as in "Ctrl+Meta".
func (m Modifier) String() string {
	var names []string
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "+")
}

// ModifierFromName returns the flag for a modifier name used in key specs,
// ignoring case. Alt and Option map to Meta. Unknown names give ModNone.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case "c", "ctrl", "control":
		return ModCtrl
	case "s", "shift":
		return ModShift
	case "m", "meta", "a", "alt", "opt", "option":
		return ModMeta
	}
	return ModNone
}
