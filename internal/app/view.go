package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shelf/internal/ui/headerbar"
	"github.com/llehouerou/shelf/internal/ui/playerbar"
)

// browserShare is the album browser's fraction of the width, in fifths.
const browserShare = 3

// bodyHeight is what the header and the player bar leave to the panels.
func (m Model) bodyHeight() int {
	return max(m.height-headerbar.Height-playerbar.Height, 0)
}

func (m *Model) resize() {
	body := m.bodyHeight()
	browserWidth := m.width * browserShare / 5

	m.browser.SetSize(browserWidth, body)
	m.queuePanel.SetSize(m.width-browserWidth, body)
	m.help.SetSize(m.width, body)
	m.picker.SetSize(m.width, body)
}

// overlay reports whether a full-width view replaces the panels.
func (m Model) overlay() bool {
	return m.showHelp || m.showPicker
}

// View renders header, panels and player bar stacked vertically.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	tabs := []headerbar.Tab{
		{Name: "Albums", Active: m.focus == FocusBrowser && !m.overlay()},
		{Name: "Queue", Active: m.focus == FocusQueue && !m.overlay()},
	}
	header := headerbar.Render(tabs, m.status, m.width)

	var body string
	switch {
	case m.showHelp:
		body = m.help.View()
	case m.showPicker:
		body = m.picker.View()
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.browser.View(), m.queuePanel.View())
	}

	bar := playerbar.Render(playerbar.NewState(m.driver, m.registry, m.queue.LoopMode()), m.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, bar)
}
