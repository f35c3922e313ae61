package app

import (
	"context"

	"github.com/dshills/keyshell/internal/config"
	"github.com/dshills/keyshell/internal/watch"
)

// startWatchers reloads the configuration when its file changes and
// rescans the executable index when a $PATH directory changes. A watcher
// that cannot start is logged and skipped.
func (app *Application) startWatchers(ctx context.Context) {
	if path := app.Config().Path(); path != "" {
		w, err := config.Watch(path, func(cfg *config.Config) {
			app.reload(ctx, cfg)
		}, func(err error) {
			app.log.WithComponent("watch").Warn("config reload: %v", err)
		})
		if err != nil {
			app.log.Warn("watching config: %v", err)
		} else {
			app.watchers = append(app.watchers, w)
		}
	}

	w, err := watch.New()
	if err != nil {
		app.log.Warn("watching PATH: %v", err)
		return
	}
	for _, dir := range app.index.Dirs() {
		if err := w.Add(dir); err != nil {
			app.log.Debug("not watching %s: %v", dir, err)
		}
	}
	w.OnChange(func(ev watch.Event) {
		app.index.Rescan()
		app.log.WithComponent("watch").Debug("rescanned executables after %s %s: %d found", ev.Op, ev.Path, app.index.Len())
	})
	w.OnError(func(err error) {
		app.log.WithComponent("watch").Warn("PATH watcher: %v", err)
	})
	app.watchers = append(app.watchers, w)
}

func (app *Application) stopWatchers() {
	for _, w := range app.watchers {
		if err := w.Close(); err != nil {
			app.log.Debug("closing watcher: %v", err)
		}
	}
	app.watchers = nil
}

// reload installs a changed configuration. A configuration that cannot be
// applied leaves the running one in place.
func (app *Application) reload(ctx context.Context, cfg *config.Config) {
	if err := app.apply(ctx, cfg); err != nil {
		app.log.Warn("config reload: %v", err)
		return
	}
	app.log.Info("reloaded %s", cfg.Path())
}
