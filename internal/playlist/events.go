package playlist

import (
	"time"

	"github.com/llehouerou/shelf/internal/emitter"
)

// AddEvent lists the track ids appended to the end of the queue.
type AddEvent []int64

// InsertEvent is emitted when tracks are inserted into the queue.
type InsertEvent struct {
	Tracks []int64 // inserted ids, in order
	To     int     // index the first id now occupies
}

// RemoveEvent lists the removed positions, sorted descending.
// Indices refer to the queue as it was before the removal.
type RemoveEvent []int

// ReorderEvent is emitted when tracks are moved within the queue.
type ReorderEvent struct {
	From    []int // moved positions (pre-reorder), sorted descending
	To      int   // requested insertion index
	Current int   // new cursor position
	Mapping []int // Mapping[old] = new, for every position
}

// ClearEvent is emitted when the queue is emptied.
type ClearEvent struct{}

// ShuffleEvent is emitted when the whole queue is randomly permuted.
type ShuffleEvent struct {
	Mapping []int // Mapping[old] = new, for every position
	Current int   // new cursor position
}

// TrackChangeEvent carries the current position and track id.
// Index is -1 (and ID zero) when the queue has no current track.
type TrackChangeEvent struct {
	Index int
	ID    int64
}

// HasTrack reports whether the event refers to an actual track.
func (e TrackChangeEvent) HasTrack() bool {
	return e.Index >= 0
}

// CountChangeEvent is emitted when the number of queued tracks changes.
type CountChangeEvent struct {
	Count    int
	Duration time.Duration
}

// LoopModeEvent is emitted when the loop mode changes.
type LoopModeEvent struct {
	Mode LoopMode
}

// Events groups the queue's notification channels, one per event kind.
//
// Listeners run synchronously inside the mutating call, after the queue
// state is final. Mutating the queue from a listener is undefined: the
// nested mutation runs immediately and its events interleave with the
// outer operation's remaining events (last write wins).
type Events struct {
	Add            *emitter.Emitter[AddEvent]
	Insert         *emitter.Emitter[InsertEvent]
	Remove         *emitter.Emitter[RemoveEvent]
	Reorder        *emitter.Emitter[ReorderEvent]
	Clear          *emitter.Emitter[ClearEvent]
	Shuffle        *emitter.Emitter[ShuffleEvent]
	TrackChange    *emitter.Emitter[TrackChangeEvent]
	CountChange    *emitter.Emitter[CountChangeEvent]
	LoopModeChange *emitter.Emitter[LoopModeEvent]
}

func newEvents() Events {
	return Events{
		Add:            emitter.New[AddEvent](),
		Insert:         emitter.New[InsertEvent](),
		Remove:         emitter.New[RemoveEvent](),
		Reorder:        emitter.New[ReorderEvent](),
		Clear:          emitter.New[ClearEvent](),
		Shuffle:        emitter.New[ShuffleEvent](),
		TrackChange:    emitter.New[TrackChangeEvent](),
		CountChange:    emitter.New[CountChangeEvent](),
		LoopModeChange: emitter.New[LoopModeEvent](),
	}
}
