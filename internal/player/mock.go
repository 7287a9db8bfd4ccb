package player

import (
	"errors"
	"time"
)

// Mock is a test double for Player.
type Mock struct {
	state      State
	path       string
	position   time.Duration
	duration   time.Duration
	volumeDB   float64
	loadErr    error
	loadCalls  []string
	seekCalls  []time.Duration
	playCalls  int
	pauseCalls int
	closed     bool
	finishedCh chan struct{}
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		finishedCh: make(chan struct{}, 1),
	}
}

func (m *Mock) Load(path string) error {
	m.loadCalls = append(m.loadCalls, path)
	m.Unload()
	if m.loadErr != nil {
		return m.loadErr
	}
	m.path = path
	m.state = Paused
	return nil
}

func (m *Mock) Unload() {
	m.state = Stopped
	m.path = ""
	m.position = 0
}

func (m *Mock) Play() {
	m.playCalls++
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Pause() {
	m.pauseCalls++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SeekTo(d time.Duration) error {
	m.seekCalls = append(m.seekCalls, d)
	if m.state == Stopped {
		return ErrNotLoaded
	}
	m.position = d
	return nil
}

func (m *Mock) SetVolumeDB(db float64) { m.volumeDB = ClampVolumeDB(db) }

func (m *Mock) VolumeDB() float64 { return m.volumeDB }

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

func (m *Mock) Close() error {
	m.Unload()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) Path() string { return m.path }

func (m *Mock) Closed() bool { return m.closed }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished simulates the loaded file reaching its end.
func (m *Mock) SimulateFinished() {
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}

// ErrMockLoad is a convenience error for load failure tests.
var ErrMockLoad = errors.New("mock load failure")
