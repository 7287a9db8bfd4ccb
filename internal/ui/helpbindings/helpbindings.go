// Package helpbindings renders a scrollable list of the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shelf/internal/keymap"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

// Source names this component in action messages.
const Source = "helpbindings"

// Close asks the app to hide the help.
type Close struct{}

func (Close) ActionType() string { return "helpbindings.close" }

// categoryOrder is the display order of binding contexts.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextPlayback,
	keymap.ContextBrowser,
	keymap.ContextTracks,
	keymap.ContextQueue,
	keymap.ContextPicker,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal:   "Global",
	keymap.ContextPlayback: "Playback",
	keymap.ContextBrowser:  "Album Browser",
	keymap.ContextTracks:   "Album Tracks",
	keymap.ContextQueue:    "Queue Panel",
	keymap.ContextPicker:   "Collection Picker",
}

var (
	closeKeys  = key.NewBinding(key.WithKeys("?", "esc", "q"), key.WithHelp("?/esc", "close"))
	scrollDown = key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "scroll"))
	scrollUp   = key.NewBinding(key.WithKeys("k", "up"))
)

// Model holds the help view state.
type Model struct {
	ui.Base
	lines  []string
	offset int
}

// New builds the help for the given contexts, in display order.
func New(contexts ...string) Model {
	var bindings []key.Binding
	var ctxOf []string
	for _, ctx := range categoryOrder {
		if !slices.Contains(contexts, ctx) {
			continue
		}
		for _, b := range keymap.ByContext(ctx) {
			bindings = append(bindings, b.Help())
			ctxOf = append(ctxOf, ctx)
		}
	}
	return Model{lines: buildLines(bindings, ctxOf)}
}

// Update handles scrolling and closing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, closeKeys):
		return m, action.Cmd(Source, Close{})
	case key.Matches(keyMsg, scrollDown):
		m.offset = min(m.offset+1, m.maxScroll())
	case key.Matches(keyMsg, scrollUp):
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

// Offset returns the first visible line.
func (m Model) Offset() int {
	return m.offset
}

// View renders the visible window of the help inside a focused panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	innerWidth := m.Width() - ui.BorderHeight
	visible := m.visibleHeight()

	end := min(m.offset+visible, len(m.lines))
	window := make([]string, 0, visible)
	for _, l := range m.lines[m.offset:end] {
		window = append(window, render.FitStyled(l, innerWidth))
	}

	footer := closeKeys.Help().Key + " " + closeKeys.Help().Desc
	if m.maxScroll() > 0 {
		footer = scrollDown.Help().Key + " " + scrollDown.Help().Desc + " · " + footer
	}

	content := strings.Join(render.FitHeight(window, visible, innerWidth), "\n") + "\n" +
		styles.T().S().Muted.Render(render.TruncateAndPad(footer, innerWidth))
	return styles.PanelStyle(true).Width(innerWidth).Render(content)
}

// buildLines lays out a header per context followed by aligned key rows.
func buildLines(bindings []key.Binding, ctxOf []string) []string {
	s := styles.T().S()
	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
	}

	var lines []string
	current := ""
	for i, b := range bindings {
		if ctxOf[i] != current {
			if current != "" {
				lines = append(lines, "")
			}
			current = ctxOf[i]
			lines = append(lines, s.Title.Render(categoryLabels[current]))
		}
		lines = append(lines,
			s.Playing.Render(render.Pad(b.Help().Key, keyWidth))+"  "+s.Base.Render(b.Help().Desc))
	}
	return lines
}

// visibleHeight leaves room for the border and footer.
func (m Model) visibleHeight() int {
	return max(m.Height()-ui.BorderHeight-1, 1)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
