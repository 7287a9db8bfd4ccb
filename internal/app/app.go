// Package app is the bubbletea model tying the album browser, the queue
// panel and the player bar to one queue and one playback driver.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/collection"
	"github.com/llehouerou/shelf/internal/keymap"
	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/logging"
	"github.com/llehouerou/shelf/internal/playback"
	"github.com/llehouerou/shelf/internal/playlist"
	"github.com/llehouerou/shelf/internal/ui/albumbrowser"
	"github.com/llehouerou/shelf/internal/ui/collectionpicker"
	"github.com/llehouerou/shelf/internal/ui/headerbar"
	"github.com/llehouerou/shelf/internal/ui/helpbindings"
	"github.com/llehouerou/shelf/internal/ui/queuepanel"
)

// Focus is the panel receiving list keys.
type Focus int

const (
	FocusBrowser Focus = iota
	FocusQueue
)

// Deps are the collaborators the app drives. The queue and driver must
// only be touched from the program goroutine once the app runs.
type Deps struct {
	Registry    *library.Registry
	Collections *collection.Library // may be nil
	Queue       *playlist.Queue
	Driver      *playback.Driver
	Logger      *slog.Logger
	Stderr      <-chan string // captured C library output; may be nil
}

// Model is the root bubbletea model.
type Model struct {
	registry    *library.Registry
	collections *collection.Library
	queue       *playlist.Queue
	driver      *playback.Driver
	logger      *slog.Logger
	stderr      <-chan string

	recorder   *queuepanel.Recorder
	browser    albumbrowser.Model
	queuePanel queuepanel.Model
	help       helpbindings.Model
	showHelp   bool
	picker     collectionpicker.Model
	showPicker bool
	focus      Focus

	keys *keymap.Resolver

	status        headerbar.Status
	width, height int
}

func New(d Deps) Model {
	help := helpbindings.New(keymap.ContextGlobal, keymap.ContextPlayback,
		keymap.ContextBrowser, keymap.ContextTracks, keymap.ContextQueue, keymap.ContextPicker)
	m := Model{
		registry:    d.Registry,
		collections: d.Collections,
		queue:       d.Queue,
		driver:      d.Driver,
		logger:      logging.Component(d.Logger, "app"),
		stderr:      d.Stderr,
		recorder:    queuepanel.Record(d.Queue),
		browser:     albumbrowser.New(d.Registry),
		queuePanel:  queuepanel.New(d.Queue, d.Registry),
		help:        help,
		keys:        keymap.Default(),
	}
	m.setFocus(FocusBrowser)
	return m
}

// Init starts the position ticker and the watchers for end of track and
// captured stderr.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(), WatchFinished(m.driver.Finished()), WatchStderr(m.stderr))
}

// Focus returns the focused panel.
func (m Model) Focus() Focus {
	return m.focus
}

// Status returns the header message.
func (m Model) Status() headerbar.Status {
	return m.status
}

// HelpVisible reports whether the help replaces the panels.
func (m Model) HelpVisible() bool {
	return m.showHelp
}

// PickerVisible reports whether the collection picker replaces the panels.
func (m Model) PickerVisible() bool {
	return m.showPicker
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.browser.SetFocused(f == FocusBrowser)
	m.queuePanel.SetFocused(f == FocusQueue)
}

func (m *Model) setStatus(text string) {
	m.status = headerbar.Status{Text: text}
}

func (m *Model) setError(text string) {
	m.status = headerbar.Status{Text: text, Err: true}
}
