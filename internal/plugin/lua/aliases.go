package lua

import (
	"sort"
	"sync"

	"github.com/dshills/keyshell/internal/syntax"
)

// Aliases maps program names to replacement text. It is safe for
// concurrent use.
type Aliases struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewAliases returns an empty alias set.
func NewAliases() *Aliases {
	return &Aliases{entries: make(map[string]string)}
}

// Set defines or replaces an alias.
func (a *Aliases) Set(name, expansion string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries[name] = expansion
}

// Remove deletes an alias and reports whether it existed.
func (a *Aliases) Remove(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.entries[name]
	delete(a.entries, name)
	return ok
}

// Get returns the expansion for name.
func (a *Aliases) Get(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	exp, ok := a.entries[name]
	return exp, ok
}

// Names returns the alias names in sorted order.
func (a *Aliases) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, 0, len(a.entries))
	for name := range a.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of aliases.
func (a *Aliases) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}

// Expand replaces the program word of line with its alias expansion. The
// assignment prefix and the arguments are kept as typed. Quoted programs
// are never expanded, and the expansion itself is not expanded again.
func (a *Aliases) Expand(line string) string {
	cmd := syntax.Parse(line)
	if !cmd.Program.Value.IsWord() || cmd.Program.Value.Text == "" {
		return line
	}
	exp, ok := a.Get(cmd.Program.Value.Text)
	if !ok {
		return line
	}

	rest := line[cmd.Offset:]
	args := syntax.NewArgs(rest)
	for {
		start := args.Offset()
		arg, ok := args.Next()
		if !ok {
			return line
		}
		if arg.IsValue() {
			end := cmd.Offset + args.Offset()
			return line[:cmd.Offset+start] + exp + line[end:]
		}
	}
}
