package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileVersion = 1

// ErrUnsupportedVersion is returned when a history file has a newer format.
var ErrUnsupportedVersion = errors.New("unsupported history file version")

type fileBody struct {
	Version int      `yaml:"version"`
	Entries []string `yaml:"entries"`
}

// Load replaces the entries with those stored at path. A missing file
// leaves the history empty and is not an error.
func (h *History) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	var body fileBody
	if err := yaml.Unmarshal(data, &body); err != nil {
		return fmt.Errorf("decoding history %s: %w", path, err)
	}
	if body.Version > fileVersion {
		return fmt.Errorf("%s: %w %d", path, ErrUnsupportedVersion, body.Version)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = h.entries[:0]
	for _, e := range body.Entries {
		if e != "" {
			h.entries = append(h.entries, e)
		}
	}
	h.position = 0
	h.trimLocked()
	return nil
}

// Save writes the entries to path, creating the parent directory. The file
// is replaced atomically.
func (h *History) Save(path string) error {
	body := fileBody{Version: fileVersion, Entries: h.Entries()}
	data, err := yaml.Marshal(&body)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*")
	if err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
