package paths

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Builtin marks names the shell handles itself.
const Builtin = "<builtin>"

// Builtins are always present in an index.
var Builtins = []string{"cd", "exit", "showkeys"}

// Index is a sorted set of executable names and where they live.
// It is safe for concurrent use.
type Index struct {
	mu    sync.RWMutex
	dirs  []string
	names []string
	where map[string]string
}

// New returns an index over dirs. Call Rescan to populate it.
func New(dirs []string) *Index {
	return &Index{
		dirs:  dirs,
		where: make(map[string]string),
	}
}

// FromEnv returns an index over the directories in $PATH, scanned.
func FromEnv() *Index {
	idx := New(filepath.SplitList(os.Getenv("PATH")))
	idx.Rescan()
	return idx
}

// Dirs returns the directories the index scans.
func (idx *Index) Dirs() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return append([]string(nil), idx.dirs...)
}

// Rescan rebuilds the index. Unreadable directories are skipped. When a
// name occurs in several directories the first one wins, as for exec.
func (idx *Index) Rescan() {
	idx.mu.RLock()
	dirs := append([]string(nil), idx.dirs...)
	idx.mu.RUnlock()

	where := make(map[string]string)
	for _, name := range Builtins {
		where[name] = Builtin
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if _, seen := where[name]; seen {
				continue
			}
			path := filepath.Join(dir, name)
			if isExecutable(path) {
				where[name] = path
			}
		}
	}

	names := make([]string, 0, len(where))
	for name := range where {
		names = append(names, name)
	}
	sort.Strings(names)

	idx.mu.Lock()
	idx.names = names
	idx.where = where
	idx.mu.Unlock()
}

// Len returns the number of indexed names.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.names)
}

// Lookup returns where name lives: a path, Builtin, or false.
func (idx *Index) Lookup(name string) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	path, ok := idx.where[name]
	return path, ok
}

// Search returns a summary for every name starting with query, in sorted
// order. An exact match therefore comes first.
func (idx *Index) Search(query string) []Summary {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	start := sort.SearchStrings(idx.names, query)
	var out []Summary
	for _, name := range idx.names[start:] {
		if !strings.HasPrefix(name, query) {
			break
		}
		if name == query {
			out = append(out, Summary{Kind: Exact, Match: query})
		} else {
			out = append(out, Summary{Kind: Partial, Match: query, Rest: name[len(query):]})
		}
	}
	return out
}

// SearchOne returns the first result of Search. An empty query never
// matches, so an empty line gets no suggestion.
func (idx *Index) SearchOne(query string) Summary {
	if query == "" {
		return Summary{}
	}
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	i := sort.SearchStrings(idx.names, query)
	if i == len(idx.names) || !strings.HasPrefix(idx.names[i], query) {
		return Summary{}
	}
	if name := idx.names[i]; name != query {
		return Summary{Kind: Partial, Match: query, Rest: name[len(query):]}
	}
	return Summary{Kind: Exact, Match: query}
}
