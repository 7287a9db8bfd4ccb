// Package albumbrowser lists the library's albums, optionally narrowed to
// one collection, and the tracks of a single album.
package albumbrowser

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/collection"
	"github.com/llehouerou/shelf/internal/keymap"
	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/cursor"
)

// Catalog is the album side of the library registry.
type Catalog interface {
	Albums() []*library.Album
	AlbumDuration(a *library.Album) time.Duration
	Track(id int64) (*library.Track, bool)
}

// Model is the album list, or the track list of the open album.
type Model struct {
	ui.Base
	catalog Catalog
	albums  []*library.Album
	cursor  cursor.Cursor

	filter     *collection.Collection
	filterName string
	members    map[int64]struct{} // nil without a filter

	open        *library.Album
	tracks      []int64
	trackCursor cursor.Cursor
}

func New(catalog Catalog) Model {
	m := Model{
		catalog:     catalog,
		cursor:      cursor.New(ui.ScrollMargin),
		trackCursor: cursor.New(ui.ScrollMargin),
	}
	m.Refresh()
	return m
}

// SetCollection narrows the list to the albums holding tracks of c, and
// each album to those tracks. A nil c shows the whole library.
func (m *Model) SetCollection(c *collection.Collection, name string) {
	m.filter = c
	m.filterName = name
	m.open = nil
	m.tracks = nil
	m.cursor.Reset()
	m.Refresh()
}

// Filter returns the name of the shown collection, or "" for the library.
func (m Model) Filter() string {
	if m.filter == nil {
		return ""
	}
	return m.filterName
}

// Refresh reloads the album list, keeping the cursor on the same album when
// it still exists.
func (m *Model) Refresh() {
	var keep int64 = -1
	if a := m.Selected(); a != nil {
		keep = a.ID
	}

	m.members = nil
	m.albums = m.catalog.Albums()
	if m.filter != nil {
		m.members = make(map[int64]struct{})
		for _, id := range m.filter.TrackIDs() {
			m.members[id] = struct{}{}
		}
		ids := m.filter.AlbumIDs(m.catalog)
		m.albums = slices.DeleteFunc(m.albums, func(a *library.Album) bool {
			_, found := slices.BinarySearch(ids, a.ID)
			return !found
		})
	}

	m.cursor.Reset()
	for i, a := range m.albums {
		if a.ID == keep {
			m.cursor.Jump(i, len(m.albums), m.ListHeight())
			break
		}
	}
	if m.open != nil {
		m.openAlbum(m.open.ID)
	}
}

// Len returns the number of listed albums.
func (m Model) Len() int {
	return len(m.albums)
}

// Cursor returns the highlighted album row.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Selected returns the album under the cursor, or nil.
func (m Model) Selected() *library.Album {
	pos := m.cursor.Pos()
	if pos < 0 || pos >= len(m.albums) {
		return nil
	}
	return m.albums[pos]
}

// Context names the bindings that apply to what is shown.
func (m Model) Context() string {
	if m.open != nil {
		return keymap.ContextTracks
	}
	return keymap.ContextBrowser
}

// trackIDs returns the tracks of a that the filter lets through.
func (m Model) trackIDs(a *library.Album) []int64 {
	if m.members == nil {
		return slices.Clone(a.TrackIDs)
	}
	out := make([]int64, 0, len(a.TrackIDs))
	for _, id := range a.TrackIDs {
		if _, ok := m.members[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// HandleAction moves a cursor or turns a key into a queue request.
func (m Model) HandleAction(a keymap.Action) (Model, tea.Cmd) {
	if m.open != nil {
		return m.handleTrackAction(a)
	}
	if m.cursor.HandleAction(a, len(m.albums), m.ListHeight()) {
		return m, nil
	}

	var mode QueueMode
	switch a {
	case keymap.ActionAppendAlbum:
		mode = QueueAppend
	case keymap.ActionInsertAlbum:
		mode = QueueInsertNext
	case keymap.ActionPlayAlbum:
		mode = QueuePlay
	case keymap.ActionOpenAlbum:
		if album := m.Selected(); album != nil {
			m.openAlbum(album.ID)
		}
		return m, nil
	case keymap.ActionFilter:
		return m, action.Cmd(Source, PickCollection{})
	default:
		return m, nil
	}

	album := m.Selected()
	if album == nil {
		return m, nil
	}
	ids := m.trackIDs(album)
	if len(ids) == 0 {
		return m, nil
	}
	return m, action.Cmd(Source, QueueAlbum{
		Mode:     mode,
		AlbumID:  album.ID,
		TrackIDs: ids,
	})
}
