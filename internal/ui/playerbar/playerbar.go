// Package playerbar renders the one-line now-playing bar.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/playlist"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	separator   = "   "
)

// Height is the bar height including its border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Loaded   bool
	Playing  bool
	Title    string
	Artist   string
	Album    string
	Position time.Duration
	Duration time.Duration
	VolumeDB float64
	Loop     playlist.LoopMode
}

// Source is the playback side the bar reads from.
type Source interface {
	CurrentTrack() *library.Track
	IsPlaying() bool
	Position() time.Duration
	Duration() time.Duration
	VolumeDB() float64
}

// AlbumSource resolves album ids to albums.
type AlbumSource interface {
	Album(id int64) (*library.Album, bool)
}

// NewState snapshots src. albums may be nil.
func NewState(src Source, albums AlbumSource, loop playlist.LoopMode) State {
	s := State{VolumeDB: src.VolumeDB(), Loop: loop}
	t := src.CurrentTrack()
	if t == nil {
		return s
	}
	s.Loaded = true
	s.Playing = src.IsPlaying()
	s.Title = t.Title
	s.Artist = t.Artist
	s.Position = src.Position()
	s.Duration = src.Duration()
	if albums != nil {
		if a, ok := albums.Album(t.AlbumID); ok {
			s.Album = a.Name
		}
	}
	return s
}

// Render returns the bar for the given total width.
func Render(s State, width int) string {
	innerWidth := max(width-ui.BorderHeight, 0)
	return styles.PanelStyle(false).
		Width(innerWidth).
		Render(renderLine(s, innerWidth))
}

// renderLine lays out "▶ Title   Artist · Album   ━━━───  1:23 / 3:58   -3.0 dB".
func renderLine(s State, width int) string {
	st := styles.T().S()
	right := RenderVolume(s.VolumeDB)
	if s.Loop != playlist.LoopNone {
		right = st.Mode.Render("loop:"+s.Loop.String()) + "  " + right
	}

	if !s.Loaded {
		left := st.Muted.Render("  Nothing playing")
		return render.Row(left, right, width)
	}

	status := playSymbol
	if !s.Playing {
		status = pauseSymbol
	}
	title := s.Title
	if title == "" {
		title = "Unknown track"
	}
	info := strings.Join(nonEmpty(s.Artist, s.Album), " · ")
	times := playlist.FormatDuration(s.Position) + " / " + playlist.FormatDuration(s.Duration)

	fixed := lipgloss.Width(status) + 1 +
		lipgloss.Width(times) + 2 +
		lipgloss.Width(separator)*2 +
		lipgloss.Width(right)
	avail := max(width-fixed-ui.MinProgressBarWidth, 0)

	// The title gets up to two thirds of the text space, the info the rest.
	titleWidth := min(lipgloss.Width(title), avail*2/3)
	if info == "" {
		titleWidth = min(lipgloss.Width(title), avail)
	}
	infoWidth := 0
	if info != "" {
		infoWidth = min(lipgloss.Width(info), max(avail-titleWidth-lipgloss.Width(separator), 0))
	}

	var b strings.Builder
	b.WriteString(st.Playing.Render(status + " "))
	b.WriteString(st.Title.Render(render.Truncate(title, titleWidth)))
	used := titleWidth
	if infoWidth > 0 {
		b.WriteString(separator)
		b.WriteString(st.Muted.Render(render.Truncate(info, infoWidth)))
		used += lipgloss.Width(separator) + infoWidth
	}
	b.WriteString(separator)

	barWidth := max(width-fixed-used, 0)
	b.WriteString(RenderProgressBar(s.Position, s.Duration, barWidth))
	b.WriteString("  ")
	b.WriteString(st.Muted.Render(times))

	return render.Row(b.String(), right, width)
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
