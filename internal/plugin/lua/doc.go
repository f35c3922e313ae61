// Package lua runs the keyshell init script.
//
// The script runs in a gopher-lua state with only the base, table, string
// and math libraries opened. It configures the shell through three global
// functions:
//
//	alias("ll", "ls -aFhl")   -- define or replace an alias
//	unalias("ll")             -- remove an alias
//	wordchars("/[&.;!]}:|")   -- override the word boundary runes
//
// Aliases apply only to the program word of a line and do not expand
// recursively:
//
//	init, err := lua.LoadInit(ctx, path)
//	line = init.Aliases.Expand(line)
package lua
