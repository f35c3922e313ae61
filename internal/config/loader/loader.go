// Package loader reads keyshell configuration sources into generic maps.
//
// Each source (a TOML file, the environment) produces a map[string]any
// keyed by section. The config package merges those maps in precedence
// order with DeepMerge and decodes the result into its typed Config.
package loader

import (
	"io"
	"io/fs"
	"os"
)

// Loader is the interface for configuration sources.
type Loader interface {
	// Load reads the source. It returns nil, nil when the source does not
	// exist.
	Load() (map[string]any, error)
}

// FileLoader is a Loader backed by files.
type FileLoader interface {
	Loader
	LoadFrom(path string) (map[string]any, error)
}

// ReaderLoader reads configuration from a stream.
type ReaderLoader interface {
	LoadFromReader(r io.Reader) (map[string]any, error)
}

// FileSystem abstracts file access so loaders can be tested in memory.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem on the real file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the whole file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}
