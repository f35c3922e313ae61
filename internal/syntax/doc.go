// Package syntax tokenizes and parses shell command lines.
//
// The grammar understood here is deliberately small:
//
//	(KEY=VALUE)* PROGRAM ARG*
//
// where every value may be a bare word or a string delimited by a backtick,
// double quote or single quote. Parsing is forgiving: an unterminated quote is
// a representable state (an incomplete quoted value) rather than an error, so
// a line can be re-parsed on every keystroke while it is being typed.
//
// # Tokens
//
// Three scanners share one engine:
//
//   - Args produces Arg tokens (values and whitespace runs) for a whole string.
//   - Vars produces Var tokens for the leading assignment prefix and stops at
//     the first token that is not a well-formed KEY=VALUE pair.
//   - Parse composes the two into a Command.
//
// Every token carries the exact substring it consumed (see Raw), so replaying
// the Raw text of all tokens reproduces the scanned input.
//
// # Offsets
//
// All offsets are byte offsets into the scanned string and always sit on a
// character boundary. The scanners only ever advance by whole encoded runes,
// so slicing at any reported offset yields valid text.
package syntax
