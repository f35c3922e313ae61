package config

import (
	"path/filepath"

	"github.com/dshills/keyshell/internal/watch"
)

// Watch reloads the config file at path whenever it changes. Every valid
// reload is passed to onReload. Load and validation failures go to onError
// and leave the running configuration alone. Close the returned watcher to
// stop.
//
// The file's directory is watched rather than the file so that editors
// which save by renaming a temp file over it are still seen.
func Watch(path string, onReload func(*Config), onError func(error), opts ...Option) (*watch.Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := watch.New(watch.WithFilter(func(ev watch.Event) bool {
		return filepath.Clean(ev.Path) == abs
	}))
	if err != nil {
		return nil, err
	}

	w.OnChange(func(watch.Event) {
		cfg, err := Load(abs, opts...)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onReload(cfg)
	})
	if onError != nil {
		w.OnError(onError)
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}
