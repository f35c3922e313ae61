package render

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/keyshell/internal/paths"
	"github.com/dshills/keyshell/internal/syntax"
)

// ClearLine returns the cursor to column 0 and erases the line.
const ClearLine = "\r\x1b[K"

// Display is everything needed to draw the prompt line once.
type Display struct {
	// Prompt is the prompt text, such as ">".
	Prompt string

	// Line is the buffer contents and Cursor the byte offset within it.
	Line   string
	Cursor int

	// Command is Line parsed.
	Command syntax.Command

	// Summary is the program suggestion. Exact and Partial results restyle
	// the program word; a Partial rest is drawn after it.
	Summary paths.Summary
}

// Shift is how many columns the cursor must move left after the line is
// drawn: the width of the text right of the cursor plus any suggested rest.
func (d Display) Shift() int {
	cursor := min(max(d.Cursor, 0), len(d.Line))
	return uniseg.StringWidth(d.Line[cursor:]) + d.Summary.Shift()
}

// Render draws the line with theme t.
func (d Display) Render(t Theme) string {
	var b strings.Builder
	b.WriteString(ClearLine)
	writePrompt(&b, t, d.Prompt)

	off := d.Command.Offset
	writeVars(&b, t, d.Line[:off])
	d.writeArgs(&b, t, d.Line[off:])

	writeMoveLeft(&b, d.Shift())
	return b.String()
}

func writePrompt(b *strings.Builder, t Theme, prompt string) {
	b.WriteByte(' ')
	t.Prompt.Wrap(b, prompt)
	b.WriteByte(' ')
}

func writeVars(b *strings.Builder, t Theme, s string) {
	vars := syntax.NewVars(s)
	for {
		v, ok := vars.Next()
		if !ok {
			return
		}
		if !v.IsPair() {
			b.WriteString(v.Raw())
			continue
		}
		b.WriteString(v.Key)
		t.Separator.Wrap(b, "=")
		writeValue(b, t, v.Value)
	}
}

func (d Display) writeArgs(b *strings.Builder, t Theme, s string) {
	args := syntax.NewArgs(s)
	program := true
	for {
		arg, ok := args.Next()
		if !ok {
			return
		}
		if !arg.IsValue() {
			b.WriteString(arg.Raw())
			continue
		}
		if program {
			program = false
			if d.writeSuggestion(b, t, arg.Value) {
				continue
			}
		}
		writeValue(b, t, arg.Value)
	}
}

func (d Display) writeSuggestion(b *strings.Builder, t Theme, v syntax.Value) bool {
	switch d.Summary.Kind {
	case paths.Exact:
		t.Exact.Wrap(b, v.Raw())
	case paths.Partial:
		b.WriteString(v.Raw())
		t.Partial.Wrap(b, d.Summary.Rest)
	default:
		return false
	}
	return true
}

func writeValue(b *strings.Builder, t Theme, v syntax.Value) {
	if v.IsQuoted() || v.IsIncomplete() {
		t.String.Wrap(b, v.Raw())
		return
	}
	b.WriteString(v.Raw())
}

func writeMoveLeft(b *strings.Builder, n int) {
	switch {
	case n <= 0:
	case n == 1:
		b.WriteString("\x1b[D")
	default:
		b.WriteString("\x1b[")
		b.WriteString(strconv.Itoa(n))
		b.WriteByte('D')
	}
}
