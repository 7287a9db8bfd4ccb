package player

// State represents the output state machine.
//
//	┌──────────┐      load       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Paused  │
//	└──────────┘                 └──────────┘
//	     ▲                          │    ▲
//	     │ unload              play │    │ pause, finish
//	     │                          ▼    │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Playing │
//	                             └──────────┘
//
// Stopped means no file is loaded. Loading always lands in Paused, so a
// track change never starts playback on its own. Unload is valid from any
// state. Play when Stopped and Pause when not Playing are ignored.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a file is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanPlay returns true if the state allows starting playback.
func (s State) CanPlay() bool {
	return s == Paused
}
