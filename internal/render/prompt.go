package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/keyshell/internal/input/key"
	"github.com/dshills/keyshell/internal/paths"
	"github.com/dshills/keyshell/internal/syntax"
)

// Searcher finds the best executable for a partial program name.
type Searcher interface {
	SearchOne(query string) paths.Summary
}

// Suggest returns the program suggestion for line. Only a bare program
// word is completed: a partial match is dropped once arguments follow or
// the line ends in whitespace, while an exact match still marks the
// program as found.
func Suggest(idx Searcher, cmd syntax.Command, line string) paths.Summary {
	prog := cmd.Program.Value
	if !prog.IsWord() || prog.Text == "" {
		return paths.Summary{}
	}
	s := idx.SearchOne(prog.Text)
	if s.IsPartial() && (len(cmd.Args) > 0 || cmd.End < len(line)) {
		return paths.Summary{}
	}
	return s
}

// Header draws the working directory on its own line above the prompt,
// with the home directory shortened to "~".
func Header(cwd, home string) string {
	return "\r\n \x1b[K" + ShortenPath(cwd, home) + "\r\n"
}

// ShortenPath replaces a leading home directory with "~".
func ShortenPath(path, home string) string {
	if home == "" || home == "/" {
		return path
	}
	home = filepath.Clean(home)
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return filepath.Join("~", rest)
	}
	return path
}

// ShowKeys draws the raw input and its decoded event on the first terminal
// row, saving and restoring the cursor around it. ev is nil when the input
// decoded to nothing.
func ShowKeys(raw []byte, ev *key.Event) string {
	var b strings.Builder
	b.WriteString("\x1b[s\x1b[1;1H\x1b[K[showkeys: ")
	fmt.Fprintf(&b, "%q", raw)
	if ev != nil {
		b.WriteString(" -> ")
		b.WriteString(ev.String())
	}
	b.WriteString("]\x1b[u")
	return b.String()
}

// NotFound is the message printed when a program or directory is missing.
func NotFound(target string) string {
	return "\rkeyshell: `" + target + "` no such file or directory\r\n"
}

// Exited is printed when the shell ends.
const Exited = "\r\n\n[keyshell exited]\r\n"
