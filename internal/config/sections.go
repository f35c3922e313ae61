package config

// EditorConfig holds line editing settings.
type EditorConfig struct {
	// WordChars are the runes that end a word for word-wise movement.
	WordChars string `toml:"wordChars"`

	// Prompt is printed before the command line.
	Prompt string `toml:"prompt"`
}

// HistoryConfig holds command history settings.
type HistoryConfig struct {
	// File is where history persists. Empty disables persistence.
	File string `toml:"file"`

	// MaxEntries caps the number of remembered lines. Zero selects the
	// history package default.
	MaxEntries int `toml:"maxEntries"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`

	// File receives log output. "-" means stderr.
	File string `toml:"file"`
}

// ThemeConfig holds prompt colours as "#rrggbb" strings. An empty colour
// leaves that element unstyled.
type ThemeConfig struct {
	Separator string `toml:"separator"`
	String    string `toml:"string"`
	Exact     string `toml:"exact"`
	Partial   string `toml:"partial"`
	Prompt    string `toml:"prompt"`
}

// Colors returns the theme colours keyed by setting name.
func (t ThemeConfig) Colors() map[string]string {
	return map[string]string{
		"separator": t.Separator,
		"string":    t.String,
		"exact":     t.Exact,
		"partial":   t.Partial,
		"prompt":    t.Prompt,
	}
}

// PluginConfig holds scripting settings.
type PluginConfig struct {
	// Init is the Lua script run at startup.
	Init string `toml:"init"`
}
