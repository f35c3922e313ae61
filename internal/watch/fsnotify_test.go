package watch

import (
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestWatcherAddRemove(t *testing.T) {
	w := newTestWatcher(t)
	tmpDir := t.TempDir()

	if err := w.Add(tmpDir); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := w.Paths(); !reflect.DeepEqual(got, []string{tmpDir}) {
		t.Errorf("Paths() = %v, want [%s]", got, tmpDir)
	}
	if err := w.Add(tmpDir); err != ErrAlreadyWatching {
		t.Errorf("Add() again error = %v, want ErrAlreadyWatching", err)
	}
	if err := w.Remove(tmpDir); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := w.Remove(tmpDir); err != ErrNotWatching {
		t.Errorf("Remove() again error = %v, want ErrNotWatching", err)
	}
}

func TestWatcherAddNonexistent(t *testing.T) {
	w := newTestWatcher(t)
	if err := w.Add("/nonexistent/path/that/does/not/exist"); err != ErrPathNotExist {
		t.Errorf("Add(nonexistent) error = %v, want ErrPathNotExist", err)
	}
}

func TestWatcherClosed(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := w.Add(t.TempDir()); err != ErrWatcherClosed {
		t.Errorf("Add() after Close error = %v, want ErrWatcherClosed", err)
	}
}

func TestWatcherDebouncesWrites(t *testing.T) {
	w := newTestWatcher(t, WithDebounceDelay(50*time.Millisecond))
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(tmpDir); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	var (
		mu     sync.Mutex
		events []Event
	)
	done := make(chan struct{}, 16)
	w.OnChange(func(e Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
		done <- struct{}{}
	})

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
	}
	// Give a second event the chance to show up.
	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %v", len(events), events)
	}
	if events[0].Path != path {
		t.Errorf("event path = %q, want %q", events[0].Path, path)
	}
	if !events[0].Op.Has(OpWrite) {
		t.Errorf("event op = %v, want WRITE", events[0].Op)
	}
}

func TestWatcherFilter(t *testing.T) {
	tmpDir := t.TempDir()
	keep := filepath.Join(tmpDir, "keep")
	w := newTestWatcher(t,
		WithDebounceDelay(20*time.Millisecond),
		WithFilter(func(e Event) bool { return e.Path == keep }),
	)
	if err := w.Add(tmpDir); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got := make(chan string, 16)
	w.OnChange(func(e Event) { got <- e.Path })

	if err := os.WriteFile(filepath.Join(tmpDir, "skip"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(keep, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-got:
		if p != keep {
			t.Errorf("event path = %q, want %q", p, keep)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
		{OpChmod, "CHMOD"},
		{OpCreate | OpWrite, "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
	if !(OpCreate | OpWrite).Has(OpWrite) {
		t.Error("Has(OpWrite) = false")
	}
}
