// Package action carries requests from UI panels up to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a panel request. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the panel that raised it.
type Msg struct {
	Source string // "albumbrowser", "queuepanel"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command delivering a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}
