package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/keymap"
)

const seekStep = 5 * time.Second

// handleKey resolves a key against the global, playback and focused panel
// bindings, in that order. The help and the collection picker take every
// key while shown.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.showPicker {
		a, _ := m.keys.Resolve(msg.String(), keymap.ContextPicker)
		m.picker, cmd = m.picker.HandleAction(a)
		return m, cmd
	}

	panel := m.browser.Context()
	if m.focus == FocusQueue {
		panel = keymap.ContextQueue
	}

	a, ctx := m.keys.Resolve(msg.String(), keymap.ContextGlobal, keymap.ContextPlayback, panel)
	switch ctx {
	case keymap.ContextGlobal:
		return m.handleGlobal(a)
	case keymap.ContextPlayback:
		m.handlePlayback(a)
	case keymap.ContextBrowser, keymap.ContextTracks:
		m.browser, cmd = m.browser.HandleAction(a)
	case keymap.ContextQueue:
		m.queuePanel, cmd = m.queuePanel.HandleAction(a)
	}
	return m, cmd
}

func (m Model) handleGlobal(a keymap.Action) (Model, tea.Cmd) {
	switch a {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionSwitchFocus:
		if m.focus == FocusBrowser {
			m.setFocus(FocusQueue)
		} else {
			m.setFocus(FocusBrowser)
		}
	case keymap.ActionHelp:
		m.showHelp = true
	}
	return m, nil
}

func (m *Model) handlePlayback(a keymap.Action) {
	switch a {
	case keymap.ActionPlayPause:
		m.driver.Toggle()
		m.reportPlaybackError()
	case keymap.ActionNextTrack:
		m.driver.SkipNextAndPlay()
		m.reportPlaybackError()
	case keymap.ActionPrevTrack:
		m.driver.SkipPreviousAndPlay()
		m.reportPlaybackError()
	case keymap.ActionSeekForward:
		m.seek(seekStep)
	case keymap.ActionSeekBack:
		m.seek(-seekStep)
	case keymap.ActionVolumeUp:
		if err := m.driver.VolumeUp(); err != nil {
			m.setError(errmsg.Format(errmsg.OpVolumeSave, err))
		}
	case keymap.ActionVolumeDown:
		if err := m.driver.VolumeDown(); err != nil {
			m.setError(errmsg.Format(errmsg.OpVolumeSave, err))
		}
	case keymap.ActionCycleLoop:
		mode := m.queue.CycleLoopMode()
		m.setStatus("Loop: " + mode.String())
	case keymap.ActionShuffle:
		m.queue.Shuffle()
	case keymap.ActionClearQueue:
		m.queue.Clear()
		m.setStatus("Queue cleared")
	}
}

func (m *Model) seek(delta time.Duration) {
	if m.driver.CurrentTrack() == nil {
		return
	}
	target := max(m.driver.Position()+delta, 0)
	if err := m.driver.SeekTo(target); err != nil {
		m.setError(errmsg.Format(errmsg.OpPlaybackSeek, err))
	}
}
