package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/dshills/keyshell/internal/config"
	"github.com/dshills/keyshell/internal/render"
	"github.com/dshills/keyshell/internal/syntax"
)

// Cursor movements that pull the next header up over the lines a builtin
// or a directory jump left behind.
const (
	upAfterCd     = "\x1b[2A"
	upAfterAutoCd = "\x1b[3A"
)

// execute runs the line in the buffer. A line that does not parse, such as
// one with an unterminated quote, stays in the buffer to be fixed.
func (app *Application) execute(ctx context.Context) error {
	text := app.line.Edit.String()
	cmd := syntax.Parse(app.Aliases().Expand(text))
	if err := cmd.Err(); err != nil {
		app.log.Debug("not running %q: %v", text, err)
		return nil
	}

	switch cmd.Program.Value.Text {
	case "exit":
		return ErrQuit
	case "cd":
		if err := app.changeDirectory(cmd); err != nil {
			return err
		}
	case "showkeys":
		app.showKeys = !app.showKeys
	default:
		if err := app.spawn(ctx, cmd); err != nil {
			return err
		}
	}

	app.history.Push(app.line.Take())
	return nil
}

// changeDirectory runs the cd builtin. With no argument it goes home.
func (app *Application) changeDirectory(cmd syntax.Command) error {
	target := app.home
	if len(cmd.Args) > 0 {
		target = cmd.Args[0].Value.Text
	}

	if err := app.chdir(target); err != nil {
		if err := app.reportChdir(target, err); err != nil {
			return err
		}
	}

	if err := app.term.WriteString(upAfterCd); err != nil {
		return err
	}
	return app.writeHeader()
}

// spawn runs a program. When the program cannot be started the line is
// tried as a directory to change into.
func (app *Application) spawn(ctx context.Context, cmd syntax.Command) error {
	if err := app.term.WriteString("\r\n"); err != nil {
		return err
	}

	if argv := cmd.Argv(); argv != nil {
		timer := StartTimer()
		err := app.run(ctx, cmd, argv)
		app.metrics.RecordCommand(timer.Elapsed(), err != nil)
		if err != nil {
			app.log.Debug("%v", err)
			target := argv[0]
			if cerr := app.chdir(target); cerr != nil {
				if err := app.reportChdir(target, cerr); err != nil {
					return err
				}
			} else if err := app.term.WriteString(upAfterAutoCd); err != nil {
				return err
			}
		}
	}

	return app.writeHeader()
}

// run starts argv with the line's assignments added to the environment and
// waits for it. The terminal leaves raw mode while the child runs. Only a
// failure to start is returned; the child's exit status is logged.
func (app *Application) run(ctx context.Context, cmd syntax.Command, argv []string) error {
	path, err := app.resolve(argv[0])
	if err != nil {
		return err
	}

	log := app.log.WithComponent("exec")
	c := exec.CommandContext(ctx, path, argv[1:]...)
	c.Args[0] = argv[0]
	c.Env = append(os.Environ(), cmd.Env()...)
	c.Stdin = app.opts.Stdin
	c.Stdout = app.opts.Stdout
	c.Stderr = app.opts.Stderr

	if err := app.term.DisableRaw(); err != nil {
		log.Error("leaving raw mode: %v", err)
	}
	defer func() {
		if err := app.term.EnableRaw(); err != nil {
			log.Error("entering raw mode: %v", err)
		}
	}()

	if err := c.Start(); err != nil {
		return NewOperationError("exec", argv[0], err)
	}
	log.Info("started %s (pid %d)", path, c.Process.Pid)

	if err := c.Wait(); err != nil {
		log.Info("%s exited with status %d: %v", argv[0], c.ProcessState.ExitCode(), err)
	}
	return nil
}

// resolve finds the file to execute for name. Names containing a slash are
// used as typed; others are looked up in the executable index.
func (app *Application) resolve(name string) (string, error) {
	if strings.ContainsRune(name, '/') {
		return name, nil
	}
	path, ok := app.index.Lookup(name)
	if !ok {
		return "", NewOperationError("exec", name, exec.ErrNotFound)
	}
	return path, nil
}

// chdir changes the working directory, expanding a leading "~".
func (app *Application) chdir(target string) error {
	if err := os.Chdir(config.ExpandHome(target)); err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	app.cwd = cwd
	app.log.Debug("changed directory to %s", cwd)
	return nil
}

// reportChdir tells the user why target could not be entered. Only a
// missing target is worth a message; anything else is logged.
func (app *Application) reportChdir(target string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return app.term.WriteString(render.NotFound(target))
	}
	app.log.Warn("cd %s: %v", target, err)
	return nil
}
