// Package app runs an interactive keyshell session. It wires the
// configuration, history, Lua aliases, executable index and keymaps
// together and drives the prompt loop over a Terminal.
package app

import (
	"context"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/keyshell/internal/config"
	"github.com/dshills/keyshell/internal/history"
	"github.com/dshills/keyshell/internal/input/keymap"
	"github.com/dshills/keyshell/internal/paths"
	"github.com/dshills/keyshell/internal/plugin/lua"
	"github.com/dshills/keyshell/internal/render"
	"github.com/dshills/keyshell/internal/watch"
)

// Terminal is the tty a session draws on and reads keys from.
// *terminal.Session implements it.
type Terminal interface {
	EnableRaw() error
	DisableRaw() error
	ReadChunk(ctx context.Context) ([]byte, error)
	WriteString(s string) error
}

// Application is one interactive shell session.
type Application struct {
	mu sync.RWMutex

	// Guarded by mu; replaced on configuration reload.
	config  *config.Config
	current settings
	aliases *lua.Aliases

	term    Terminal
	log     *Logger
	logFile io.Closer
	session string

	keys    *keymap.Registry
	metrics *Metrics
	history *history.History
	index   *paths.Index
	line    *Line

	// Loop state.
	home     string
	cwd      string
	showKeys bool

	watchers []*watch.Watcher
	running  atomic.Bool

	opts Options
}

// settings are the values the prompt loop reads on every redraw.
type settings struct {
	prompt    string
	wordChars string
	theme     render.Theme
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty means the default path.
	ConfigPath string

	// LogLevel and LogFile override the configured logging settings.
	LogLevel string
	LogFile  string

	// NoHistory disables loading and saving the history file.
	NoHistory bool

	// NoWatch disables configuration reload and PATH rescans.
	NoWatch bool

	// PathDirs replaces $PATH as the executable search path.
	PathDirs []string

	// Stdin, Stdout and Stderr are given to child processes. They default
	// to the process's own.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates an Application drawing on term.
func New(term Terminal, opts Options) (*Application, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	app := &Application{
		term:    term,
		opts:    opts,
		session: uuid.NewString(),
		log:     NullLogger,
		keys:    keymap.NewRegistry(),
		metrics: NewMetrics(),
	}

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	path := app.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}

	// 2. Logging
	if err := app.openLog(cfg.Logging); err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.log.Info("starting session with config %s", cfg.Path())

	// 3. Keymaps
	if err := app.keys.Register(keymap.Default()); err != nil {
		return &InitError{Component: "keymap", Err: err}
	}

	// 4. History
	app.history = history.New(cfg.History.MaxEntries)
	if !app.opts.NoHistory && cfg.History.File != "" {
		if err := app.history.Load(cfg.History.File); err != nil {
			app.log.Warn("loading history: %v", err)
		}
	}
	app.line = NewLine(app.history, cfg.Editor.WordChars)

	// 5. Executables
	if app.opts.PathDirs != nil {
		app.index = paths.New(app.opts.PathDirs)
	} else {
		app.index = paths.FromEnv()
	}
	app.log.Debug("indexed %d executables", app.index.Len())

	// 6. Working directory
	app.home, _ = os.UserHomeDir()
	if app.cwd, err = os.Getwd(); err != nil {
		return &InitError{Component: "working directory", Err: err}
	}

	// 7. Everything that follows the config file: theme, user keys and
	// the init script.
	if err := app.apply(context.Background(), cfg); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	return nil
}

func (app *Application) openLog(cfg config.LoggingConfig) error {
	level, file := cfg.Level, cfg.File
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		file = app.opts.LogFile
	}

	var out io.Writer = io.Discard
	if file != "" {
		w, err := OpenLogFile(file)
		if err != nil {
			return err
		}
		app.logFile = w
		out = w
	}

	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: out,
		Prefix: "keyshell",
	})
	app.log = logger.WithField("session", app.session)
	return nil
}

// apply installs cfg as the running configuration.
func (app *Application) apply(ctx context.Context, cfg *config.Config) error {
	theme, err := render.NewTheme(cfg.Theme)
	if err != nil {
		return err
	}

	user, err := cfg.Keymap()
	if err != nil {
		return err
	}
	if len(user.Bindings) == 0 {
		app.keys.Unregister(user.Name)
	} else if err := app.keys.Register(user.WithPriority(10)); err != nil {
		return err
	}

	script, err := lua.LoadInit(ctx, cfg.Plugin.Init)
	if err != nil {
		// A broken script must not keep the shell from starting.
		app.log.Warn("%v", err)
		script = &lua.Init{Aliases: lua.NewAliases()}
	}

	next := settings{
		prompt:    cfg.Editor.Prompt,
		wordChars: cfg.Editor.WordChars,
		theme:     theme,
	}
	if script.WordChars != "" {
		next.wordChars = script.WordChars
	}

	app.mu.Lock()
	app.config = cfg
	app.current = next
	app.aliases = script.Aliases
	app.mu.Unlock()

	app.history.SetMaxEntries(cfg.History.MaxEntries)
	app.log.SetLevel(ParseLogLevel(cfg.Logging.Level))
	if app.opts.LogLevel != "" {
		app.log.SetLevel(ParseLogLevel(app.opts.LogLevel))
	}
	app.log.Debug("applied config: %d aliases, %d user keys", script.Aliases.Len(), len(cfg.Keys))
	return nil
}

func (app *Application) settings() settings {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.current
}

// Config returns the running configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config
}

// Aliases returns the aliases defined by the init script.
func (app *Application) Aliases() *lua.Aliases {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.aliases
}

// History returns the command history.
func (app *Application) History() *history.History {
	return app.history
}

// Keymaps returns the keymap registry.
func (app *Application) Keymaps() *keymap.Registry {
	return app.keys
}

// Line returns the prompt line state.
func (app *Application) Line() *Line {
	return app.line
}

// SessionID returns the ID attached to every log line of this session.
func (app *Application) SessionID() string {
	return app.session
}

// IsRunning returns true while Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Close releases the log file. Run must have returned.
func (app *Application) Close() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}
