package app

import "time"

// TickMsg drives the position display.
type TickMsg time.Time

// TrackFinishedMsg reports that the audio sink reached the end of a track.
type TrackFinishedMsg struct{}

// StderrMsg carries a line a C library wrote to the process stderr.
type StderrMsg struct {
	Line string
}
