package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shelf/internal/playlist"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

const (
	playingSymbol  = "▶"
	selectedSymbol = "●"
	durationWidth  = 8
)

// View renders the queue panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	content := m.renderHeader(innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderTrackList(innerWidth, m.ListHeight())

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader shows position, count and total duration, with the loop mode
// on the right.
func (m Model) renderHeader(innerWidth int) string {
	s := styles.T().S()

	var left string
	if len(m.selected) > 0 {
		left = fmt.Sprintf("Queue [%d selected]", len(m.selected))
	} else {
		left = fmt.Sprintf("Queue (%d/%d) %s",
			m.queue.CurrentIndex()+1, m.queue.Len(), m.queue.DurationString())
	}

	var right string
	if mode := m.queue.LoopMode(); mode != playlist.LoopNone {
		right = "loop:" + mode.String() + " "
	}

	left = render.TruncateAndPad(left, max(innerWidth-lipgloss.Width(right), 0))
	return s.Title.Render(left) + s.Mode.Render(right)
}

func (m Model) renderTrackList(innerWidth, listHeight int) string {
	if listHeight <= 0 {
		return ""
	}
	ids := m.queue.IDs()
	playing := m.queue.CurrentIndex()
	start, end := m.cursor.VisibleRange(len(ids), listHeight)

	lines := make([]string, 0, listHeight)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderTrackLine(ids[idx], idx, playing, innerWidth))
	}
	if len(ids) == 0 {
		lines = append(lines, styles.T().S().Muted.Render(render.TruncateAndPad("  Queue is empty", innerWidth)))
	}
	return strings.Join(render.FitHeight(lines, listHeight, innerWidth), "\n")
}

// renderTrackLine renders "▶ title  artist  3:45 ●".
func (m Model) renderTrackLine(id int64, idx, playing, width int) string {
	prefix := "  "
	if idx == playing {
		prefix = playingSymbol + " "
	}
	suffix := "  "
	if m.selected[idx] {
		suffix = " " + selectedSymbol
	}

	title, artist, length := fmt.Sprintf("Unknown track #%d", id), "", ""
	if t, ok := m.tracks.Track(id); ok {
		title, artist = t.Title, t.Artist
		length = playlist.FormatDuration(t.Duration)
	}

	contentWidth := max(width-lipgloss.Width(prefix)-lipgloss.Width(suffix)-durationWidth, 0)
	line := prefix +
		render.Columns(contentWidth, title, artist) +
		fmt.Sprintf("%*s", durationWidth, length) +
		suffix

	return m.lineStyle(idx, playing).Render(line)
}

// lineStyle marks the cursor row, the current track and played tracks.
func (m Model) lineStyle(idx, playing int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	switch {
	case isCursor && idx == playing:
		return s.Cursor.Inherit(s.Playing)
	case isCursor:
		return s.Cursor
	case idx == playing:
		return s.Playing
	case idx < playing:
		return s.Subtle
	case m.selected[idx]:
		return s.Selected
	default:
		return s.Base
	}
}
