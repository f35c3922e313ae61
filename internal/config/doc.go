// Package config provides keyshell's typed configuration.
//
// Configuration comes from three sources, later ones overriding earlier:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← KEYSHELL_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/keyshell/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// The loader subpackage reads each source into a map. Load merges them
// and decodes the result into a Config:
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Configuration File
//
//	# ~/.config/keyshell/config.toml
//	[editor]
//	wordChars = "/[&.;!]}:\"|"
//	prompt = ">"
//
//	[history]
//	maxEntries = 1000
//
//	[theme]
//	string = "#d7af5f"
//	exact = "#5faf5f"
//	partial = "#808080"
//
//	[keys]
//	"C-u" = "edit.clear"
//
// # Live Reload
//
// Watch reloads the file when it changes and hands each valid result to a
// callback. Invalid edits are reported and otherwise ignored so a typo
// never takes a running shell down.
package config
