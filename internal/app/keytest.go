package app

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/keyshell/internal/input/key"
	"github.com/dshills/keyshell/internal/input/keymap"
	"github.com/dshills/keyshell/internal/terminal"
)

const keyTestTitle = "keyshell key test: press keys to see their bindings, the exit key to quit"

// KeyTest shows, on a full tcell screen, how each key press decodes and
// which action the keymaps bind it to. It is a diagnostic for key
// configuration.
type KeyTest struct {
	screen tcell.Screen
	keys   *keymap.Registry
	tr     terminal.Translator
	legend []string

	mu    sync.Mutex
	lines []string
}

// NewKeyTest creates a key test on an initialized screen.
func NewKeyTest(screen tcell.Screen, keys *keymap.Registry) *KeyTest {
	return &KeyTest{screen: screen, keys: keys, legend: bindingLegend(keys.Bindings())}
}

// Run reads events until a key bound to the exit action is pressed or the
// screen is finalized.
func (kt *KeyTest) Run() {
	kt.screen.EnablePaste()
	kt.draw()

	for {
		ev := kt.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			kt.screen.Sync()
			kt.draw()
			continue
		}

		kev, ok := kt.tr.Translate(ev)
		if !ok {
			continue
		}
		action, bound := kt.keys.Action(kev)
		kt.record(describeKey(kev, action, bound))
		if action == keymap.ActionShellExit {
			return
		}
		kt.draw()
	}
}

// Lines returns the recorded key descriptions, oldest first.
func (kt *KeyTest) Lines() []string {
	kt.mu.Lock()
	defer kt.mu.Unlock()
	return append([]string(nil), kt.lines...)
}

func (kt *KeyTest) record(line string) {
	kt.mu.Lock()
	defer kt.mu.Unlock()
	kt.lines = append(kt.lines, line)
}

func describeKey(ev key.Event, action string, bound bool) string {
	name := ev.String()
	if ev.IsPaste() {
		name += " " + strconv.Quote(ev.Text)
	}
	if !bound {
		inserted := ev.IsRune() || ev.Key == key.KeySpace
		if ev.IsPaste() || (inserted && ev.Modifiers.IsEmpty()) {
			return name + "  (inserted)"
		}
		return name + "  (unbound)"
	}
	return name + "  -> " + action
}

// bindingLegend lists the keys of bindings one category per row.
func bindingLegend(bindings []keymap.Binding) []string {
	groups := keymap.GroupByCategory(bindings)
	rows := make([]string, 0, len(groups))
	for _, g := range groups {
		keys := make([]string, 0, len(g.Bindings))
		for _, b := range g.Bindings {
			keys = append(keys, b.Keys)
		}
		rows = append(rows, fmt.Sprintf("%-9s %s", g.Name+":", strings.Join(keys, " ")))
	}
	return rows
}

func (kt *KeyTest) draw() {
	kt.screen.Clear()
	_, height := kt.screen.Size()

	title := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Dim(true)
	drawText(kt.screen, 0, 0, keyTestTitle, title)
	for i, row := range kt.legend {
		drawText(kt.screen, 0, i+1, row, dim)
	}

	top := len(kt.legend) + 2
	lines := kt.Lines()
	if room := height - top; room > 0 && len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for i, line := range lines {
		drawText(kt.screen, 0, top+i, line, tcell.StyleDefault)
	}
	kt.screen.Show()
}

// drawText puts s on row y starting at column x, one grapheme cluster per
// cell group.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += max(g.Width(), 1)
	}
}
