package app

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/dshills/keyshell/internal/edit"
	"github.com/dshills/keyshell/internal/input/key"
	"github.com/dshills/keyshell/internal/render"
	"github.com/dshills/keyshell/internal/syntax"
)

// Run puts the terminal in raw mode and runs the prompt loop until the
// user exits or ctx is cancelled. History is saved and the terminal
// restored before it returns.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.term.EnableRaw(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}

	if !app.opts.NoWatch {
		app.startWatchers(ctx)
	}
	defer app.stopWatchers()

	err := app.loop(ctx)
	if errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		app.log.Error("session ended: %v", err)
	}

	app.saveHistory()
	app.log.Info("session stats: %s", app.metrics.Snapshot())
	return errors.Join(err, app.term.DisableRaw(), app.term.WriteString(render.Exited))
}

// loop draws the prompt, waits for a key and applies it, forever.
func (app *Application) loop(ctx context.Context) error {
	if err := app.writeHeader(); err != nil {
		return err
	}

	for {
		if err := app.draw(); err != nil {
			return err
		}

		ev, err := app.nextEvent(ctx)
		if err != nil {
			return err
		}

		outcome, err := app.dispatch(ev)
		if err != nil {
			app.log.Error("editing line: %v", err)
		}

		switch outcome {
		case OutcomeExit:
			return ErrQuit
		case OutcomeExecute:
			if err := app.execute(ctx); err != nil {
				return err
			}
		}
	}
}

// dispatch applies ev to the line. A panic while editing is logged by the
// caller and the line starts over empty, so one bad key does not end the
// session.
func (app *Application) dispatch(ev key.Event) (outcome Outcome, err error) {
	timer := StartTimer()
	defer func() {
		app.metrics.RecordKey(timer.Elapsed())
		if v := recover(); v != nil {
			err = &RecoveredPanicError{Value: v, Stack: string(debug.Stack())}
			app.line.Edit = edit.New()
			app.history.Reset()
			outcome = OutcomeNone
		}
	}()

	app.line.WordChars = []rune(app.settings().wordChars)
	return app.line.Dispatch(app.keys, ev), nil
}

// draw renders the prompt line and updates the suggestion.
func (app *Application) draw() error {
	timer := StartTimer()
	defer func() { app.metrics.RecordRender(timer.Elapsed()) }()

	s := app.settings()
	text := app.line.Edit.String()
	cmd := syntax.Parse(text)
	app.line.Summary = render.Suggest(app.index, cmd, text)

	d := render.Display{
		Prompt:  s.prompt,
		Line:    text,
		Cursor:  app.line.Edit.Cursor(),
		Command: cmd,
		Summary: app.line.Summary,
	}
	return app.term.WriteString(d.Render(s.theme))
}

// nextEvent reads input until a chunk decodes to a key.
func (app *Application) nextEvent(ctx context.Context) (key.Event, error) {
	for {
		chunk, err := app.term.ReadChunk(ctx)
		if err != nil {
			return key.Event{}, err
		}

		ev, ok := key.Decode(chunk)
		if app.showKeys {
			var shown *key.Event
			if ok {
				shown = &ev
			}
			if err := app.term.WriteString(render.ShowKeys(chunk, shown)); err != nil {
				return key.Event{}, err
			}
		}
		if ok {
			return ev, nil
		}
		app.metrics.RecordIgnoredInput()
		app.log.Debug("ignoring input %q", chunk)
	}
}

func (app *Application) writeHeader() error {
	return app.term.WriteString(render.Header(app.cwd, app.home))
}

func (app *Application) saveHistory() {
	if app.opts.NoHistory {
		return
	}
	path := app.Config().History.File
	if path == "" {
		return
	}
	if err := app.history.Save(path); err != nil {
		app.log.Error("saving history: %v", err)
		return
	}
	app.log.Debug("saved %d history entries to %s", app.history.Len(), path)
}
