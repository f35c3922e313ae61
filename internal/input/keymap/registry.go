package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keyshell/internal/input/key"
)

// Registry holds the active keymaps and provides binding lookup.
// It is safe for concurrent use; keymaps are swapped by configuration
// reloads while the session loop looks keys up.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds all registered keymaps by name.
	keymaps map[string]*ParsedKeymap

	// ordered holds the keymaps by descending priority.
	ordered []*ParsedKeymap

	// seq increases with each registration, breaking priority ties in
	// favour of the newest keymap.
	seq   int
	order map[string]int
}

// NewRegistry creates a new keymap registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]*ParsedKeymap),
		order:   make(map[string]int),
	}
}

// Register adds a keymap to the registry.
// If a keymap with the same name already exists, it is replaced.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}

	parsed, err := km.Parse()
	if err != nil {
		return fmt.Errorf("parsing keymap %q: %w", km.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.keymaps[km.Name] = parsed
	r.order[km.Name] = r.seq
	r.reorderLocked()

	return nil
}

// Unregister removes a keymap from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.keymaps, name)
	delete(r.order, name)
	r.reorderLocked()
}

// reorderLocked rebuilds the priority order.
// Caller must hold the write lock.
func (r *Registry) reorderLocked() {
	r.ordered = r.ordered[:0]
	for _, km := range r.keymaps {
		r.ordered = append(r.ordered, km)
	}
	sort.Slice(r.ordered, func(i, j int) bool {
		a, b := r.ordered[i], r.ordered[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return r.order[a.Name] > r.order[b.Name]
	})
}

// Lookup finds the binding for ev in the highest-priority keymap that
// binds it. It returns nil when no keymap does.
func (r *Registry) Lookup(ev key.Event) *Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, km := range r.ordered {
		if pb := km.Lookup(ev); pb != nil {
			b := pb.Binding
			return &b
		}
	}
	return nil
}

// Action returns the action bound to ev.
func (r *Registry) Action(ev key.Event) (string, bool) {
	if b := r.Lookup(ev); b != nil {
		return b.Action, true
	}
	return "", false
}

// Bindings returns the effective bindings, one per key, highest priority
// first within each key and keymaps in priority order.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		out  []Binding
		seen []key.Event
	)
	for _, km := range r.ordered {
		for i := len(km.ParsedBindings) - 1; i >= 0; i-- {
			pb := km.ParsedBindings[i]
			if containsEvent(seen, pb.Event) {
				continue
			}
			seen = append(seen, pb.Event)
			out = append(out, pb.Binding)
		}
	}
	return out
}

func containsEvent(events []key.Event, ev key.Event) bool {
	for _, e := range events {
		if e.Equals(ev) {
			return true
		}
	}
	return false
}
