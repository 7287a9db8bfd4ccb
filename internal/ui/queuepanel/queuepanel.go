// Package queuepanel renders the play queue and turns list actions into
// queue operations.
package queuepanel

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/keymap"
	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/playlist"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/cursor"
)

// Source names this panel in action messages.
const Source = "queuepanel"

// JumpToTrack asks the app to play the entry at Index.
type JumpToTrack struct {
	Index int
}

func (JumpToTrack) ActionType() string { return "queuepanel.jump_to_track" }

// TrackSource resolves queue ids for display.
type TrackSource interface {
	Track(id int64) (*library.Track, bool)
}

// Model represents the queue panel state.
//
// The panel never rebuilds its cursor or selection from scratch: queue
// events are fed back through Apply, which moves both along with the
// entries they point at.
type Model struct {
	ui.Base
	queue    *playlist.Queue
	tracks   TrackSource
	cursor   cursor.Cursor
	selected map[int]bool
	length   int // queue length as of the last applied event
}

// New creates a new queue panel model.
func New(queue *playlist.Queue, tracks TrackSource) Model {
	return Model{
		queue:    queue,
		tracks:   tracks,
		cursor:   cursor.New(ui.ScrollMargin),
		selected: make(map[int]bool),
		length:   queue.Len(),
	}
}

// Cursor returns the highlighted queue index.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Selected returns the selected queue indices in ascending order.
func (m Model) Selected() []int {
	out := make([]int, 0, len(m.selected))
	for i := range m.selected {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// HandleAction applies a queue panel action. Queue mutations happen
// immediately; the panel's own state follows once the resulting events are
// applied.
func (m Model) HandleAction(a keymap.Action) (Model, tea.Cmd) {
	n := m.queue.Len()
	if m.cursor.HandleAction(a, n, m.ListHeight()) {
		return m, nil
	}

	switch a {
	case keymap.ActionToggleSelect:
		if n == 0 {
			break
		}
		pos := m.cursor.Pos()
		if m.selected[pos] {
			delete(m.selected, pos)
		} else {
			m.selected[pos] = true
		}
		m.cursor.Move(1, n, m.ListHeight())
	case keymap.ActionClearSelection:
		clear(m.selected)
	case keymap.ActionJumpTo:
		if n == 0 {
			break
		}
		return m, action.Cmd(Source, JumpToTrack{Index: m.cursor.Pos()})
	case keymap.ActionDelete:
		if n > 0 {
			m.queue.Remove(m.targets()...)
		}
	case keymap.ActionMoveItemsDown:
		m.moveTargets(1)
	case keymap.ActionMoveItemsUp:
		m.moveTargets(-1)
	}
	return m, nil
}

// targets returns the selection, or the cursor entry when nothing is selected.
func (m Model) targets() []int {
	if len(m.selected) > 0 {
		return m.Selected()
	}
	return []int{m.cursor.Pos()}
}

// moveTargets shifts the targeted entries one step. The block stops at the
// queue edges.
func (m Model) moveTargets(delta int) {
	n := m.queue.Len()
	if n == 0 {
		return
	}
	sources := m.targets()
	switch {
	case delta > 0:
		last := sources[len(sources)-1]
		if last >= n-1 {
			return
		}
		m.queue.Reorder(last+2, sources...)
	case delta < 0:
		first := sources[0]
		if first <= 0 {
			return
		}
		m.queue.Reorder(first-1, sources...)
	}
}
