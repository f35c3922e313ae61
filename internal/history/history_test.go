package history

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRecall(t *testing.T) {
	h := New(10)
	h.Push("one")
	h.Push("two")
	h.Push("three")

	if _, err := h.Get(); !errors.Is(err, ErrNothingToRecall) {
		t.Errorf("Get() at rest error = %v, want ErrNothingToRecall", err)
	}

	want := []string{"three", "two", "one", "one"}
	for i, w := range want {
		h.Older()
		got, err := h.Get()
		if err != nil {
			t.Fatalf("Get() after %d Older() error = %v", i+1, err)
		}
		if got != w {
			t.Errorf("Get() after %d Older() = %q, want %q", i+1, got, w)
		}
	}
	if got := h.Position(); got != 3 {
		t.Errorf("Position() = %d, want 3", got)
	}

	h.Newer()
	if got, _ := h.Get(); got != "two" {
		t.Errorf("Get() after Newer() = %q, want %q", got, "two")
	}
	h.Newer()
	h.Newer()
	h.Newer()
	if got := h.Position(); got != 0 {
		t.Errorf("Position() = %d, want 0", got)
	}
	if _, err := h.Get(); err == nil {
		t.Error("Get() past newest error = nil")
	}
}

func TestRecallEmpty(t *testing.T) {
	h := New(0)
	h.Older()
	if h.Position() != 0 {
		t.Errorf("Older() on empty history moved to %d", h.Position())
	}
	if _, err := h.Get(); !errors.Is(err, ErrNothingToRecall) {
		t.Errorf("Get() error = %v, want ErrNothingToRecall", err)
	}
}

func TestPush(t *testing.T) {
	h := New(3)
	h.Push("a")
	h.Older()
	h.Push("b")
	if h.Position() != 0 {
		t.Errorf("Push() did not reset position: %d", h.Position())
	}
	h.Push("")
	h.Push("   ")
	h.Push("b")
	h.Push("c")
	h.Push("d")

	if got, want := h.Entries(), []string{"b", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %q, want %q", got, want)
	}
}

func TestSetMaxEntries(t *testing.T) {
	h := New(10)
	for _, s := range []string{"a", "b", "c", "d"} {
		h.Push(s)
	}
	h.Older()
	h.Older()
	h.Older()
	h.Older()
	h.SetMaxEntries(2)
	if got, want := h.Entries(), []string{"c", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %q, want %q", got, want)
	}
	if got := h.Position(); got != 2 {
		t.Errorf("Position() = %d, want 2", got)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.yaml")

	h := New(10)
	h.Push("ls -la")
	h.Push(`echo "a: b"`)
	h.Push("KEY='x' env")
	if err := h.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "version: 1\n") {
		t.Errorf("file = %q, want version header", data)
	}

	loaded := New(10)
	loaded.Push("stale")
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := loaded.Entries(), h.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Load() entries = %q, want %q", got, want)
	}
}

func TestLoadMissing(t *testing.T) {
	h := New(10)
	if err := h.Load(filepath.Join(t.TempDir(), "none.yaml")); err != nil {
		t.Errorf("Load(missing) error = %v", err)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("entries: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := New(10).Load(bad); err == nil {
		t.Error("Load(bad yaml) error = nil")
	}

	future := filepath.Join(dir, "future.yaml")
	if err := os.WriteFile(future, []byte("version: 2\nentries: [a]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := New(10).Load(future); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Load(version 2) error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestLoadTrims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nentries: [a, '', b, c]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	h := New(2)
	if err := h.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := h.Entries(), []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %q, want %q", got, want)
	}
}
