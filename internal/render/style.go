package render

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/keyshell/internal/config"
)

// Reset clears every SGR attribute.
const Reset = "\x1b[m"

// Style is an SGR prefix. The zero Style leaves text unstyled.
type Style string

// Foreground returns a 24-bit foreground style for c.
func Foreground(c colorful.Color) Style {
	r, g, b := c.Clamped().RGB255()
	return Style(fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b))
}

// ParseStyle builds a foreground style from a "#rrggbb" colour. An empty
// string yields the zero Style.
func ParseStyle(hex string) (Style, error) {
	if hex == "" {
		return "", nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("colour %q: %w", hex, err)
	}
	return Foreground(c), nil
}

// Wrap writes text to b in this style.
func (s Style) Wrap(b *strings.Builder, text string) {
	if s == "" || text == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(string(s))
	b.WriteString(text)
	b.WriteString(Reset)
}

// Theme holds the styles used for each element of the line.
type Theme struct {
	Separator Style
	String    Style
	Exact     Style
	Partial   Style
	Prompt    Style
}

// NewTheme converts configured colours into styles.
func NewTheme(cfg config.ThemeConfig) (Theme, error) {
	var (
		t   Theme
		err error
	)
	for _, f := range []struct {
		dst *Style
		hex string
	}{
		{&t.Separator, cfg.Separator},
		{&t.String, cfg.String},
		{&t.Exact, cfg.Exact},
		{&t.Partial, cfg.Partial},
		{&t.Prompt, cfg.Prompt},
	} {
		if *f.dst, err = ParseStyle(f.hex); err != nil {
			return Theme{}, err
		}
	}
	return t, nil
}

// DefaultTheme returns the theme for the default configuration.
func DefaultTheme() Theme {
	t, err := NewTheme(config.Default().Theme)
	if err != nil {
		panic("render: default theme colours must parse: " + err.Error())
	}
	return t
}
