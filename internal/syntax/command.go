package syntax

import (
	"errors"
	"fmt"
)

// ErrIncomplete is wrapped by every CommandError.
var ErrIncomplete = errors.New("incomplete command")

// DiagnosticKind classifies a problem found while parsing a command line.
type DiagnosticKind uint8

const (
	// DiagIncompleteArg marks a value with an unterminated quote.
	DiagIncompleteArg DiagnosticKind = iota + 1
)

// String returns a short description of the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagIncompleteArg:
		return "unterminated quote"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", k)
	}
}

// Diagnostic describes a problem at a byte offset of the parsed line.
// Parsing never fails; diagnostics let callers decide what to reject.
type Diagnostic struct {
	Kind   DiagnosticKind
	Offset int
	Text   string
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s %q", d.Offset, d.Kind, d.Text)
}

// CommandError reports the first diagnostic of a command.
type CommandError struct {
	Diagnostic Diagnostic
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s at offset %d: %q", e.Diagnostic.Kind, e.Diagnostic.Offset, e.Diagnostic.Text)
}

// Unwrap returns ErrIncomplete.
func (e *CommandError) Unwrap() error {
	return ErrIncomplete
}

// Command is a parsed command line: assignments, a program and its arguments.
type Command struct {
	// Vars holds the completed assignments, in input order.
	Vars []Var

	// Program is the first value after the assignments. It is Word("") when
	// the line has none.
	Program Arg

	// Args holds the values after Program. Whitespace is not included.
	Args []Arg

	// Offset is where the program text starts: the byte position just after
	// the last completed assignment, or 0.
	Offset int

	// End is the byte position just after the last value.
	End int

	// Diagnostics lists every problem found, in input order.
	Diagnostics []Diagnostic
}

// Parse splits s into a Command. It always succeeds.
func Parse(s string) Command {
	cmd := Command{Program: ValueToken(Word(""))}

	// Assignments stop at the first token that is not a completed pair. An
	// unterminated quoted value is not a completed pair: its text is left for
	// the argument scan, which reports it.
	vars := NewVars(s)
	for {
		v, ok := vars.Next()
		if !ok || v.IsError() {
			break
		}
		if v.IsPair() {
			if v.Value.IsIncomplete() {
				break
			}
			cmd.Vars = append(cmd.Vars, v)
			cmd.Offset = vars.Offset()
		}
	}

	rest := s[cmd.Offset:]
	args := NewArgs(rest)
	cmd.End = cmd.Offset
	first := true
	for {
		start := args.Offset()
		arg, ok := args.Next()
		if !ok {
			break
		}
		if !arg.IsValue() {
			continue
		}
		if arg.IsIncomplete() {
			cmd.addDiagnostic(DiagIncompleteArg, cmd.Offset+start, arg.Raw())
		}
		cmd.End = cmd.Offset + args.Offset()
		if first {
			cmd.Program = arg
			first = false
			continue
		}
		cmd.Args = append(cmd.Args, arg)
	}

	return cmd
}

func (c *Command) addDiagnostic(kind DiagnosticKind, offset int, text string) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Kind: kind, Offset: offset, Text: text})
}

// Err returns a *CommandError for the first diagnostic, or nil.
func (c Command) Err() error {
	if len(c.Diagnostics) == 0 {
		return nil
	}
	return &CommandError{Diagnostic: c.Diagnostics[0]}
}

// Env returns the assignments as KEY=VALUE strings, values unquoted.
func (c Command) Env() []string {
	env := make([]string, 0, len(c.Vars))
	for _, v := range c.Vars {
		env = append(env, v.Key+"="+v.Value.Text)
	}
	return env
}

// Argv returns the program followed by its arguments, values unquoted.
// It is empty when the line has no program.
func (c Command) Argv() []string {
	if c.Program.Value.Text == "" && len(c.Args) == 0 && !c.Program.Value.IsQuoted() {
		return nil
	}
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Program.Value.Text)
	for _, a := range c.Args {
		argv = append(argv, a.Value.Text)
	}
	return argv
}

// IsEmpty reports whether the line has neither assignments nor a program.
func (c Command) IsEmpty() bool {
	return len(c.Vars) == 0 && c.Argv() == nil
}
