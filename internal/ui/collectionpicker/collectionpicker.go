// Package collectionpicker lists the whole library followed by every
// collection as an indented tree, and reports the chosen entry.
package collectionpicker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/collection"
	"github.com/llehouerou/shelf/internal/keymap"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/cursor"
)

// Source names this component in action messages.
const Source = "collectionpicker"

// Entry is one row of the picker.
type Entry struct {
	Path       string                 // "Jazz/Bebop"; empty for the library
	Depth      int                    // nesting below the top-level collections
	Collection *collection.Collection // nil for the library
	Tracks     int
}

// Picked asks the app to browse the entry's collection.
type Picked struct {
	Entry Entry
}

func (Picked) ActionType() string { return "collectionpicker.picked" }

// Closed asks the app to hide the picker without a change.
type Closed struct{}

func (Closed) ActionType() string { return "collectionpicker.closed" }

// Model holds the entries and the cursor.
type Model struct {
	ui.Base
	entries []Entry
	cursor  cursor.Cursor
}

// New lists lib, which may be nil, under an entry for the whole library of
// libraryTracks tracks.
func New(lib *collection.Library, libraryTracks int) Model {
	return Model{
		entries: Entries(lib, libraryTracks),
		cursor:  cursor.New(ui.ScrollMargin),
	}
}

// Entries flattens lib depth first, children after their parent.
func Entries(lib *collection.Library, libraryTracks int) []Entry {
	out := []Entry{{Tracks: libraryTracks}}
	if lib == nil {
		return out
	}
	var walk func(c *collection.Collection, parents []string, depth int)
	walk = func(c *collection.Collection, parents []string, depth int) {
		path := append(parents[:len(parents):len(parents)], c.Name)
		out = append(out, Entry{
			Path:       strings.Join(path, "/"),
			Depth:      depth,
			Collection: c,
			Tracks:     len(c.TrackIDs()),
		})
		for _, child := range c.Children() {
			walk(child, path, depth+1)
		}
	}
	for _, c := range lib.Collections {
		walk(c, nil, 0)
	}
	return out
}

// Len returns the number of entries, the library included.
func (m Model) Len() int {
	return len(m.entries)
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Select moves the cursor onto the entry with path. Unknown paths leave it
// on the library.
func (m *Model) Select(path string) {
	m.cursor.Reset()
	for i, e := range m.entries {
		if e.Path == path {
			m.cursor.Jump(i, len(m.entries), m.ListHeight())
			return
		}
	}
}

// HandleAction moves the cursor, picks the highlighted entry or closes.
func (m Model) HandleAction(a keymap.Action) (Model, tea.Cmd) {
	if m.cursor.HandleAction(a, len(m.entries), m.ListHeight()) {
		return m, nil
	}
	switch a {
	case keymap.ActionSelect:
		return m, action.Cmd(Source, Picked{Entry: m.entries[m.cursor.Pos()]})
	case keymap.ActionClose:
		return m, action.Cmd(Source, Closed{})
	}
	return m, nil
}
