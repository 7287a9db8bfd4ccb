package collectionpicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

const libraryLabel = "All albums"

// View renders the picker inside a focused panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	innerWidth := m.Width() - ui.BorderHeight
	height := m.ListHeight()

	start, end := m.cursor.VisibleRange(len(m.entries), height)
	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderEntry(m.entries[i], i == m.cursor.Pos(), innerWidth))
	}
	if len(m.entries) == 1 {
		lines = append(lines, s.Muted.Render(render.TruncateAndPad(
			"  No collections. Create one with `shelf collections create`.", innerWidth)))
	}

	content := s.Title.Render(render.TruncateAndPad("Collections", innerWidth)) + "\n" +
		render.Separator(innerWidth) + "\n" +
		strings.Join(render.FitHeight(lines, height, innerWidth), "\n")
	return styles.PanelStyle(true).Width(innerWidth).Render(content)
}

func (m Model) renderEntry(e Entry, isCursor bool, width int) string {
	s := styles.T().S()

	name := libraryLabel
	if e.Collection != nil {
		name = strings.Repeat("  ", e.Depth+1) + e.Collection.Name
	}
	meta := fmt.Sprintf(" %s tr", humanize.Comma(int64(e.Tracks)))

	line := "  " + render.TruncateAndPad(name, max(width-2-lipgloss.Width(meta), 0)) + meta
	line = render.TruncateAndPad(line, width)
	if isCursor {
		return s.Cursor.Render(line)
	}
	return s.Base.Render(line)
}
