package history

import (
	"errors"
	"strings"
	"sync"
)

// ErrNothingToRecall is returned by Get when no entry is recalled.
var ErrNothingToRecall = errors.New("nothing to recall")

// DefaultMaxEntries bounds the list when no limit is configured.
const DefaultMaxEntries = 1000

// History is an ordered list of executed lines with a recall position.
type History struct {
	mu sync.Mutex

	entries  []string
	position int

	maxEntries int
}

// New creates a history that keeps at most maxEntries lines.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Position returns the recall position.
func (h *History) Position() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.position
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Push appends line and resets the recall position. Blank lines and a
// repeat of the newest line are not recorded.
func (h *History) Push(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.position = 0
	if strings.TrimSpace(line) == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	h.trimLocked()
}

// trimLocked drops the oldest entries beyond the limit.
// Caller must hold the lock.
func (h *History) trimLocked() {
	if excess := len(h.entries) - h.maxEntries; excess > 0 {
		h.entries = append(h.entries[:0], h.entries[excess:]...)
	}
	if h.position > len(h.entries) {
		h.position = len(h.entries)
	}
}

// Older moves the recall position one entry back in time.
func (h *History) Older() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.position = min(h.position+1, len(h.entries))
}

// Newer moves the recall position one entry forward in time.
func (h *History) Newer() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.position = max(h.position-1, 0)
}

// Reset clears the recall position.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.position = 0
}

// Get returns the recalled entry.
func (h *History) Get() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.position == 0 {
		return "", ErrNothingToRecall
	}
	return h.entries[len(h.entries)-h.position], nil
}

// SetMaxEntries changes the limit, dropping the oldest entries if needed.
func (h *History) SetMaxEntries(n int) {
	if n <= 0 {
		n = DefaultMaxEntries
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.maxEntries = n
	h.trimLocked()
}
