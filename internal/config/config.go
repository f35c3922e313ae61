package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keyshell/internal/config/loader"
	"github.com/dshills/keyshell/internal/input/key"
	"github.com/dshills/keyshell/internal/input/keymap"
)

// DefaultWordChars end a word for word-wise cursor movement.
const DefaultWordChars = `/[&.;!]}:"|`

// LogLevels are the accepted logging.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config is the complete keyshell configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	History HistoryConfig `toml:"history"`
	Logging LoggingConfig `toml:"logging"`
	Theme   ThemeConfig   `toml:"theme"`
	Plugin  PluginConfig  `toml:"plugin"`

	// Keys maps key specs to action names, overriding default bindings.
	Keys map[string]string `toml:"keys"`

	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			WordChars: DefaultWordChars,
			Prompt:    ">",
		},
		History: HistoryConfig{
			File:       filepath.Join(DataDir(), "history.yaml"),
			MaxEntries: 1000,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(DataDir(), "keyshell.log"),
		},
		Theme: ThemeConfig{
			Separator: "#808080",
			String:    "#d7af5f",
			Exact:     "#5faf5f",
			Partial:   "#808080",
			Prompt:    "#5f87d7",
		},
		Plugin: PluginConfig{
			Init: filepath.Join(ConfigDir(), "init.lua"),
		},
		Keys: map[string]string{},
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	fs  loader.FileSystem
	env loader.Loader
}

// WithFileSystem reads the config file through fsys.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnv replaces the environment source. Pass nil to ignore the
// environment.
func WithEnv(env loader.Loader) Option {
	return func(o *options) {
		o.env = env
	}
}

// Load builds a Config from the defaults, the TOML file at path and the
// KEYSHELL_ environment, in increasing precedence. A missing file is not
// an error. Load does not validate; call Validate.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(loader.DefaultPrefix),
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := make(map[string]any)
	if path != "" {
		data, err := loader.NewTOMLLoaderWithFS(o.fs, path).Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, data)
	}
	if o.env != nil {
		data, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, data)
	}

	cfg := Default()
	if err := decode(merged, cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	cfg.path = path
	cfg.History.File = ExpandHome(cfg.History.File)
	cfg.Logging.File = ExpandHome(cfg.Logging.File)
	cfg.Plugin.Init = ExpandHome(cfg.Plugin.Init)
	return cfg, nil
}

// decode overlays a merged settings map onto cfg by round-tripping it
// through TOML, so only the settings present replace defaults.
func decode(data map[string]any, cfg *Config) error {
	if len(data) == 0 {
		return nil
	}
	b, err := toml.Marshal(data)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, cfg)
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Keys = maps.Clone(c.Keys)
	return &out
}

// Validate checks every setting and returns all problems joined. Each
// one is a *ValidationError matching ErrValidationFailed.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if c.Editor.WordChars == "" {
		add("editor.wordChars", "must not be empty", c.Editor.WordChars, ErrCodeRequiredMissing)
	}
	if c.Editor.Prompt == "" {
		add("editor.prompt", "must not be empty", c.Editor.Prompt, ErrCodeRequiredMissing)
	}
	if c.History.MaxEntries < 0 {
		add("history.maxEntries", "must not be negative", c.History.MaxEntries, ErrCodeOutOfRange)
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.Logging.Level)) {
		add("logging.level", "must be one of "+strings.Join(LogLevels, ", "), c.Logging.Level, ErrCodeInvalidEnum)
	}

	colors := c.Theme.Colors()
	for _, name := range slices.Sorted(maps.Keys(colors)) {
		value := colors[name]
		if value == "" {
			continue
		}
		if _, err := colorful.Hex(value); err != nil {
			add("theme."+name, "must be a #rrggbb colour", value, ErrCodePatternMismatch)
		}
	}

	for _, spec := range slices.Sorted(maps.Keys(c.Keys)) {
		if _, err := key.Parse(spec); err != nil {
			add("keys."+spec, "invalid key spec", spec, ErrCodePatternMismatch)
			continue
		}
		if action := c.Keys[spec]; !keymap.IsAction(action) {
			add("keys."+spec, "unknown action", action, ErrCodeInvalidEnum)
		}
	}

	return errors.Join(errs...)
}

// Keymap converts the key overrides into a keymap for the registry.
func (c *Config) Keymap() (*keymap.Keymap, error) {
	return keymap.FromConfig("user", c.Keys)
}
