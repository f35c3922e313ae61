// Package watch reports file system changes to the shell.
//
// It backs two features: reloading the configuration file when it is saved
// and rescanning the executable index when a $PATH directory changes. Rapid
// changes to one path are coalesced into a single event.
package watch

import (
	"errors"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrAlreadyWatching = errors.New("path is already being watched")
	ErrNotWatching     = errors.New("path is not being watched")
	ErrPathNotExist    = errors.New("path does not exist")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates a file or directory was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates a file was written to.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	case OpChmod:
		return "CHMOD"
	default:
		return "UNKNOWN"
	}
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event represents a file system change.
type Event struct {
	// Path is the absolute path of the affected file or directory.
	Path string

	// Op holds every operation seen during the debounce window.
	Op Op

	// Time is when the last operation was seen.
	Time time.Time
}

// Handler is a function that handles file system events.
type Handler func(event Event)

// ErrorHandler is a function that handles watcher errors.
type ErrorHandler func(err error)

// Config holds watcher configuration options.
type Config struct {
	// DebounceDelay is how long a path must stay quiet before its event
	// is delivered.
	// Default: 100ms
	DebounceDelay time.Duration

	// Filter drops events it returns false for.
	Filter func(Event) bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 100 * time.Millisecond,
	}
}

// Option configures a watcher.
type Option func(*Config)

// WithDebounceDelay sets the debounce delay.
func WithDebounceDelay(d time.Duration) Option {
	return func(c *Config) {
		c.DebounceDelay = d
	}
}

// WithFilter sets the event filter.
func WithFilter(filter func(Event) bool) Option {
	return func(c *Config) {
		c.Filter = filter
	}
}
