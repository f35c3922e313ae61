package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) Open(name string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[editor]
wordChars = "/[&.;!]}:\"|"
prompt = "$"

[history]
maxEntries = 500

[keys]
"C-u" = "edit.clear"
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"editor.wordChars", `/[&.;!]}:"|`},
		{"editor.prompt", "$"},
		{"history.maxEntries", int64(500)},
		{"keys.C-u", "edit.clear"},
	}
	for _, tt := range tests {
		got, ok := getByPath(config, tt.path)
		if !ok || got != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.path, got, got, tt.want)
		}
	}
}

func TestTOMLLoader_MissingFile(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/nope.toml").Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if config != nil {
		t.Errorf("Load() = %v, want nil", config)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[editor]\nprompt = \n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Path != "/bad.toml" {
		t.Errorf("Path = %q, want /bad.toml", perr.Path)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	if !strings.Contains(perr.Error(), "line 2") {
		t.Errorf("Error() = %q, want it to mention line 2", perr.Error())
	}
	if perr.Unwrap() == nil {
		t.Error("Unwrap() = nil, want decode error")
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	l := NewTOMLLoader("")
	config, err := l.LoadFromReader(strings.NewReader("[logging]\nlevel = \"debug\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if got, _ := getByPath(config, "logging.level"); got != "debug" {
		t.Errorf("logging.level = %v, want debug", got)
	}

	_, err = l.LoadFromReader(strings.NewReader("= 1"))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Path != "<reader>" {
		t.Errorf("LoadFromReader(bad) error = %v, want ParseError for <reader>", err)
	}
}

func TestTOMLLoader_Includes(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/cfg/config.toml", `
"@include" = ["theme.toml", "/shared/keys.toml"]

[theme]
prompt = "#ff0000"
`)
	memfs.AddFile("/cfg/theme.toml", `
[theme]
prompt = "#00ff00"
string = "#0000ff"
`)
	memfs.AddFile("/shared/keys.toml", `
[keys]
"C-u" = "edit.clear"
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/cfg/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := config["@include"]; ok {
		t.Error("@include key left in result")
	}

	tests := []struct {
		path string
		want any
	}{
		{"theme.prompt", "#ff0000"},
		{"theme.string", "#0000ff"},
		{"keys.C-u", "edit.clear"},
	}
	for _, tt := range tests {
		if got, _ := getByPath(config, tt.path); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestTOMLLoader_IncludeCycle(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", `"@include" = "b.toml"`)
	memfs.AddFile("/b.toml", `"@include" = "a.toml"`)

	_, err := NewTOMLLoaderWithFS(memfs, "/a.toml").Load()
	if !errors.Is(err, ErrIncludeDepth) {
		t.Errorf("Load() error = %v, want ErrIncludeDepth", err)
	}
}

func TestTOMLLoader_BadInclude(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", `"@include" = 3`)

	if _, err := NewTOMLLoaderWithFS(memfs, "/a.toml").Load(); err == nil {
		t.Error("Load() with numeric @include succeeded, want error")
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor": map[string]any{"prompt": ">", "wordChars": "/"},
		"keys":   map[string]any{"C-u": "edit.clear"},
	}
	src := map[string]any{
		"editor":  map[string]any{"prompt": "$"},
		"keys":    "none",
		"logging": map[string]any{"level": "debug"},
	}

	got := DeepMerge(dst, src)

	if v, _ := getByPath(got, "editor.prompt"); v != "$" {
		t.Errorf("editor.prompt = %v, want $", v)
	}
	if v, _ := getByPath(got, "editor.wordChars"); v != "/" {
		t.Errorf("editor.wordChars = %v, want /", v)
	}
	if got["keys"] != "none" {
		t.Errorf("keys = %v, want none", got["keys"])
	}
	if v, _ := getByPath(got, "logging.level"); v != "debug" {
		t.Errorf("logging.level = %v, want debug", v)
	}

	// src maps are copied, not aliased.
	src["logging"].(map[string]any)["level"] = "error"
	if v, _ := getByPath(got, "logging.level"); v != "debug" {
		t.Errorf("logging.level after src mutation = %v, want debug", v)
	}

	if got := DeepMerge(nil, nil); got == nil || len(got) != 0 {
		t.Errorf("DeepMerge(nil, nil) = %v, want empty map", got)
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{
		"a": map[string]any{"b": []any{"x", map[string]any{"c": 1}}},
	}
	dst := Clone(src)
	src["a"].(map[string]any)["b"].([]any)[0] = "y"

	list := dst["a"].(map[string]any)["b"].([]any)
	if list[0] != "x" {
		t.Errorf("clone shares slice with source: %v", list)
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) != nil")
	}
}
