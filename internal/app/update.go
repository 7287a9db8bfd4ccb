package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/albumbrowser"
	"github.com/llehouerou/shelf/internal/ui/collectionpicker"
	"github.com/llehouerou/shelf/internal/ui/helpbindings"
	"github.com/llehouerou/shelf/internal/ui/queuepanel"
)

// Update handles a message, then feeds the queue events it caused to the
// queue panel.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.queuePanel = m.queuePanel.ApplyAll(m.recorder.Drain())
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.driver.IsPlaying() {
			m.driver.Tick()
		}
		return m, TickCmd()

	case TrackFinishedMsg:
		m.driver.HandleFinished()
		m.reportPlaybackError()
		return m, WatchFinished(m.driver.Finished())

	case StderrMsg:
		m.logger.Warn("audio backend", slog.String("line", msg.Line))
		m.setError(msg.Line)
		return m, WatchStderr(m.stderr)

	case action.Msg:
		m.logger.Debug("action", slog.String("source", msg.Source), slog.String("type", msg.Action.ActionType()))
		return m.handleAction(msg.Action)
	}
	return m, nil
}

func (m Model) handleAction(a action.Action) (Model, tea.Cmd) {
	switch a := a.(type) {
	case albumbrowser.QueueAlbum:
		m.queueAlbum(a)
	case albumbrowser.QueueTracks:
		m.queueTracks(a)
	case albumbrowser.PickCollection:
		m.openPicker()
	case collectionpicker.Picked:
		m.showPicker = false
		m.browser.SetCollection(a.Entry.Collection, a.Entry.Path)
		m.setFocus(FocusBrowser)
		if a.Entry.Collection == nil {
			m.setStatus("Browsing all albums")
		} else {
			m.setStatus("Browsing " + a.Entry.Path)
		}
	case collectionpicker.Closed:
		m.showPicker = false
	case queuepanel.JumpToTrack:
		m.queue.ChangeTrack(a.Index)
		m.driver.Play()
		m.reportPlaybackError()
	case helpbindings.Close:
		m.showHelp = false
	}
	return m, nil
}
