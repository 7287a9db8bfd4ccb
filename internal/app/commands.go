package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const tickInterval = 500 * time.Millisecond

// TickCmd returns a command that sends TickMsg after tickInterval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchFinished waits for one end-of-track signal. The audio goroutine only
// signals; the queue advances when the message reaches Update.
func WatchFinished(finished <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-finished; !ok {
			return nil
		}
		return TrackFinishedMsg{}
	}
}

// WatchStderr waits for one captured stderr line. A nil channel disables
// the watch.
func WatchStderr(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}
