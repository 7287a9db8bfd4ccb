package player

import "time"

// Interface defines the audio sink contract for dependency injection and testing.
type Interface interface {
	Load(path string) error
	Unload()
	Play()
	Pause()
	State() State
	Position() time.Duration
	Duration() time.Duration
	SeekTo(pos time.Duration) error
	SetVolumeDB(db float64)
	VolumeDB() float64
	// FinishedChan receives once each time the loaded file plays to its end.
	FinishedChan() <-chan struct{}
	Close() error
}

var (
	_ Interface = (*Player)(nil)
	_ Interface = (*Mock)(nil)
)
