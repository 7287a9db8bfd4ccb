package playlist

import (
	"fmt"
	"strings"
)

// LoopMode defines what happens when the current track finishes.
type LoopMode int

const (
	// LoopNone stops at the end of the queue.
	LoopNone LoopMode = iota
	// LoopTrack repeats the current track.
	LoopTrack
	// LoopQueue restarts at the top of the queue after the last track.
	LoopQueue
)

// String returns the configuration name of the mode.
func (m LoopMode) String() string {
	switch m {
	case LoopNone:
		return "none"
	case LoopTrack:
		return "track"
	case LoopQueue:
		return "queue"
	default:
		return "unknown"
	}
}

// Next returns the mode that follows m when cycling: none, queue, track.
func (m LoopMode) Next() LoopMode {
	switch m {
	case LoopNone:
		return LoopQueue
	case LoopQueue:
		return LoopTrack
	default:
		return LoopNone
	}
}

// ParseLoopMode parses a mode name. The empty string is LoopNone.
func ParseLoopMode(s string) (LoopMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return LoopNone, nil
	case "track", "one":
		return LoopTrack, nil
	case "queue", "all", "playlist":
		return LoopQueue, nil
	default:
		return LoopNone, fmt.Errorf("unknown loop mode %q", s)
	}
}
