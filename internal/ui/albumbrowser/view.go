package albumbrowser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/playlist"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

const (
	unknownAlbum  = "Unknown album"
	unknownArtist = "Unknown artist"
	trackNoWidth  = 6
)

// View renders the album list panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	var content string
	if m.open != nil {
		content = m.renderTracksHeader(innerWidth) + "\n" +
			render.Separator(innerWidth) + "\n" +
			m.renderTracks(innerWidth, m.ListHeight())
	} else {
		content = m.renderHeader(innerWidth) + "\n" +
			render.Separator(innerWidth) + "\n" +
			m.renderList(innerWidth, m.ListHeight())
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(width int) string {
	tracks := 0
	for _, a := range m.albums {
		tracks += len(m.trackIDs(a))
	}
	header := fmt.Sprintf("Albums (%s) · %s tracks",
		humanize.Comma(int64(len(m.albums))), humanize.Comma(int64(tracks)))
	if name := m.Filter(); name != "" {
		header += " · " + name
	}
	return styles.T().S().Title.Render(render.TruncateAndPad(header, width))
}

func (m Model) renderList(width, height int) string {
	if height <= 0 {
		return ""
	}
	start, end := m.cursor.VisibleRange(len(m.albums), height)

	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderAlbum(m.albums[i], i == m.cursor.Pos(), width))
	}
	if len(m.albums) == 0 {
		hint := "  No albums. Run `shelf scan` first."
		if m.filter != nil {
			hint = "  No albums in this collection."
		}
		lines = append(lines, styles.T().S().Muted.Render(render.TruncateAndPad(hint, width)))
	}
	return strings.Join(render.FitHeight(lines, height, width), "\n")
}

// renderAlbum renders "  Name  Artist  12 tr  45:12".
func (m Model) renderAlbum(a *library.Album, isCursor bool, width int) string {
	s := styles.T().S()

	name := a.Name
	if name == "" {
		name = unknownAlbum
	}
	artist := a.Artist
	if artist == "" {
		artist = unknownArtist
	}
	meta := fmt.Sprintf("%5d tr %8s", len(m.trackIDs(a)),
		playlist.FormatDuration(m.catalog.AlbumDuration(a)))

	contentWidth := max(width-2-lipgloss.Width(meta), 0)
	line := "  " + render.Columns(contentWidth, name, artist) + meta
	line = render.TruncateAndPad(line, width)

	if isCursor && m.IsFocused() {
		return s.Cursor.Render(line)
	}
	return s.Base.Render(line)
}

func (m Model) renderTracksHeader(width int) string {
	name, artist := m.open.Name, m.open.Artist
	if name == "" {
		name = unknownAlbum
	}
	if artist == "" {
		artist = unknownArtist
	}
	header := fmt.Sprintf("%s · %s · %s", name, artist, english.Plural(len(m.tracks), "track", ""))
	return styles.T().S().Title.Render(render.TruncateAndPad(header, width))
}

func (m Model) renderTracks(width, height int) string {
	if height <= 0 {
		return ""
	}
	start, end := m.trackCursor.VisibleRange(len(m.tracks), height)

	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderTrack(m.tracks[i], i == m.trackCursor.Pos(), width))
	}
	return strings.Join(render.FitHeight(lines, height, width), "\n")
}

// renderTrack renders "  1-03  Title  Artist  5:12".
func (m Model) renderTrack(id int64, isCursor bool, width int) string {
	s := styles.T().S()

	t, ok := m.catalog.Track(id)
	if !ok {
		return s.Muted.Render(render.TruncateAndPad("  missing track", width))
	}
	var no string
	switch {
	case t.Disc > 0 && t.No > 0:
		no = fmt.Sprintf("%d-%02d", t.Disc, t.No)
	case t.No > 0:
		no = strconv.Itoa(t.No)
	}
	meta := fmt.Sprintf(" %8s", playlist.FormatDuration(t.Duration))

	contentWidth := max(width-2-trackNoWidth-lipgloss.Width(meta), 0)
	line := "  " + render.TruncateAndPad(no, trackNoWidth) +
		render.Columns(contentWidth, t.Title, t.Artist) + meta
	line = render.TruncateAndPad(line, width)

	if isCursor && m.IsFocused() {
		return s.Cursor.Render(line)
	}
	return s.Base.Render(line)
}
