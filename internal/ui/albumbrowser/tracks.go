package albumbrowser

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/keymap"
	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/ui/action"
)

// openAlbum lists the tracks of the album with id. It goes back to the
// album list when the album is no longer listed.
func (m *Model) openAlbum(id int64) {
	var album *library.Album
	for _, a := range m.albums {
		if a.ID == id {
			album = a
			break
		}
	}
	if album == nil {
		m.open = nil
		m.tracks = nil
		return
	}
	if m.open == nil || m.open.ID != id {
		m.trackCursor.Reset()
	}
	m.open = album
	m.tracks = m.trackIDs(album)
	m.trackCursor.ClampToBounds(len(m.tracks))
}

// OpenAlbum returns the album whose tracks are shown, or nil.
func (m Model) OpenAlbum() *library.Album {
	return m.open
}

// Tracks returns the listed track ids of the open album.
func (m Model) Tracks() []int64 {
	return m.tracks
}

// TrackCursor returns the highlighted track row.
func (m Model) TrackCursor() int {
	return m.trackCursor.Pos()
}

func (m Model) handleTrackAction(a keymap.Action) (Model, tea.Cmd) {
	if m.trackCursor.HandleAction(a, len(m.tracks), m.ListHeight()) {
		return m, nil
	}
	if a == keymap.ActionBack {
		m.open = nil
		m.tracks = nil
		return m, nil
	}

	pos := m.trackCursor.Pos()
	if pos < 0 || pos >= len(m.tracks) {
		return m, nil
	}
	one := []int64{m.tracks[pos]}

	var req action.Action
	switch a {
	case keymap.ActionPlayFrom:
		req = QueueAlbum{Mode: QueuePlay, AlbumID: m.open.ID, TrackIDs: m.trackIDs(m.open), Start: pos}
	case keymap.ActionAppendAlbum:
		req = QueueAlbum{Mode: QueueAppend, AlbumID: m.open.ID, TrackIDs: m.trackIDs(m.open)}
	case keymap.ActionPlayTrack:
		req = QueueTracks{Mode: QueuePlay, TrackIDs: one}
	case keymap.ActionAppendTrack:
		req = QueueTracks{Mode: QueueAppend, TrackIDs: one}
	case keymap.ActionInsertTrack:
		req = QueueTracks{Mode: QueueInsertNext, TrackIDs: one}
	default:
		return m, nil
	}
	return m, action.Cmd(Source, req)
}
