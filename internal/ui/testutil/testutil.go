// Package testutil holds helpers for driving and inspecting bubbletea
// models in tests.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

var namedKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"tab":    tea.KeyTab,
	"esc":    tea.KeyEsc,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"ctrl+c": tea.KeyCtrlC,

	"backspace": tea.KeyBackspace,
}

// Key builds the key message whose String() is name: a named key such as
// "enter" or "pgdown", "space", or literal runes.
func Key(name string) tea.KeyMsg {
	if name == "space" {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Lines strips styling from a rendered view and splits it into lines.
func Lines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}

// FindLine returns the first unstyled line containing substr, or "".
func FindLine(view, substr string) string {
	for _, line := range Lines(view) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}
