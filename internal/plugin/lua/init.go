package lua

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// Init is what the init script configured.
type Init struct {
	Aliases *Aliases

	// WordChars is the word boundary override, or "" when the script set
	// none.
	WordChars string
}

// LoadInit runs the init script at path. A missing script yields an empty
// Init and no error.
func LoadInit(ctx context.Context, path string, opts ...StateOption) (*Init, error) {
	out := &Init{Aliases: NewAliases()}
	if path == "" {
		return out, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, nil
		}
		return nil, fmt.Errorf("init script: %w", err)
	}

	s := NewState(opts...)
	defer s.Close()
	out.install(s)

	if err := s.DoFile(ctx, path); err != nil {
		return nil, fmt.Errorf("running %s: %w", path, err)
	}
	return out, nil
}

// RunString runs init code held in a string.
func RunString(ctx context.Context, code string, opts ...StateOption) (*Init, error) {
	out := &Init{Aliases: NewAliases()}
	s := NewState(opts...)
	defer s.Close()
	out.install(s)

	if err := s.DoString(ctx, code); err != nil {
		return nil, err
	}
	return out, nil
}

func (in *Init) install(s *State) {
	s.RegisterFunc("alias", func(L *lua.LState) int {
		name := L.CheckString(1)
		exp := L.CheckString(2)
		if name == "" {
			L.ArgError(1, "alias name must not be empty")
		}
		in.Aliases.Set(name, exp)
		return 0
	})
	s.RegisterFunc("unalias", func(L *lua.LState) int {
		L.Push(lua.LBool(in.Aliases.Remove(L.CheckString(1))))
		return 1
	})
	s.RegisterFunc("wordchars", func(L *lua.LState) int {
		chars := L.CheckString(1)
		if chars == "" {
			L.ArgError(1, "word chars must not be empty")
		}
		in.WordChars = chars
		return 0
	})
}
