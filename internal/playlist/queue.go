package playlist

import (
	"math/rand/v2"
	"slices"
	"time"
)

// TrackLookup resolves track durations for duration queries.
// Ids unknown to the lookup count as zero.
type TrackLookup interface {
	TrackDuration(id int64) (time.Duration, bool)
}

// Shuffler permutes n elements by calling swap, like rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

// Option configures a Queue.
type Option func(*Queue)

// WithShuffler replaces the random source used by Shuffle.
func WithShuffler(s Shuffler) Option {
	return func(q *Queue) {
		if s != nil {
			q.shuffler = s
		}
	}
}

// WithLoopMode sets the initial loop mode.
func WithLoopMode(m LoopMode) Option {
	return func(q *Queue) {
		q.loop = m
	}
}

// Queue is the ordered list of track ids driving playback, with a cursor
// on the current track and a loop mode.
//
// The cursor is -1 exactly when the queue is empty; otherwise it is a
// valid index. A Queue is not safe for concurrent use: all operations and
// event dispatch happen on the calling goroutine.
type Queue struct {
	ids      []int64
	current  int
	loop     LoopMode
	lookup   TrackLookup
	shuffler Shuffler
	events   Events
}

// New creates an empty queue. lookup may be nil, in which case every
// track has zero duration.
func New(lookup TrackLookup, opts ...Option) *Queue {
	q := &Queue{
		current:  -1,
		lookup:   lookup,
		shuffler: rand.Shuffle,
		events:   newEvents(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Events returns the queue's notification channels.
func (q *Queue) Events() Events {
	return q.events
}

// Add appends ids to the end of the queue. If the queue was empty the
// first added track becomes current.
func (q *Queue) Add(ids ...int64) {
	if len(ids) == 0 {
		return
	}
	madeValid := q.IsEmpty()
	q.ids = append(q.ids, ids...)
	if madeValid {
		q.current = 0
	}

	q.events.Add.Emit(AddEvent(slices.Clone(ids)))
	q.emitCount()
	if madeValid {
		q.emitTrackChange()
	}
}

// Insert splices ids into the queue before the track currently at index
// at. An index equal to Len appends; out-of-range indices are clamped.
// The cursor keeps pointing at the same track.
func (q *Queue) Insert(at int, ids ...int64) {
	if len(ids) == 0 {
		return
	}
	at = clamp(at, 0, len(q.ids))
	madeValid := q.IsEmpty()
	q.ids = slices.Insert(q.ids, at, ids...)
	if madeValid {
		q.current = 0
	} else if at <= q.current {
		q.current += len(ids)
	}

	q.events.Insert.Emit(InsertEvent{Tracks: slices.Clone(ids), To: at})
	q.emitCount()
	if madeValid {
		q.emitTrackChange()
	}
}

// InsertNext inserts ids right after the current track.
func (q *Queue) InsertNext(ids ...int64) {
	q.Insert(q.current+1, ids...)
}

// Remove deletes the tracks at the given positions. Duplicate and
// out-of-range indices are ignored. If the current track is removed, the
// track that followed it becomes current (or the new last track).
func (q *Queue) Remove(indices ...int) {
	removed := normalizeIndices(indices, len(q.ids))
	if len(removed) == 0 {
		return
	}

	changed := false
	for _, i := range removed {
		q.ids = slices.Delete(q.ids, i, i+1)
		if i < q.current {
			q.current--
		} else if i == q.current {
			changed = true
		}
	}
	switch {
	case len(q.ids) == 0:
		q.current = -1
	case q.current >= len(q.ids):
		q.current = len(q.ids) - 1
	case q.current < 0:
		q.current = 0
	}

	q.events.Remove.Emit(RemoveEvent(removed))
	q.emitCount()
	if changed {
		q.emitTrackChange()
	}
}

// Clear empties the queue.
func (q *Queue) Clear() {
	hadTracks := len(q.ids) > 0
	q.ids = nil
	q.current = -1

	q.events.Clear.Emit(ClearEvent{})
	q.emitTrackChange()
	if hadTracks {
		q.emitCount()
	}
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return len(q.ids) == 0
}

// Len returns the number of tracks in the queue.
func (q *Queue) Len() int {
	return len(q.ids)
}

// CurrentIndex returns the position of the current track (-1 if none).
func (q *Queue) CurrentIndex() int {
	return q.current
}

// CurrentID returns the id of the current track.
func (q *Queue) CurrentID() (int64, bool) {
	if q.IsEmpty() {
		return 0, false
	}
	return q.ids[q.current], true
}

// At returns the id at the given position.
func (q *Queue) At(index int) (int64, bool) {
	if index < 0 || index >= len(q.ids) {
		return 0, false
	}
	return q.ids[index], true
}

// IDs returns a copy of the queued ids in playback order.
func (q *Queue) IDs() []int64 {
	return slices.Clone(q.ids)
}

// TotalDuration sums the durations of all queued tracks.
func (q *Queue) TotalDuration() time.Duration {
	if q.lookup == nil {
		return 0
	}
	var total time.Duration
	for _, id := range q.ids {
		if d, ok := q.lookup.TrackDuration(id); ok {
			total += d
		}
	}
	return total
}

// DurationString returns the total duration formatted by FormatDuration.
func (q *Queue) DurationString() string {
	return FormatDuration(q.TotalDuration())
}

func (q *Queue) emitCount() {
	q.events.CountChange.Emit(CountChangeEvent{
		Count:    len(q.ids),
		Duration: q.TotalDuration(),
	})
}

func (q *Queue) emitTrackChange() {
	id, ok := q.CurrentID()
	if !ok {
		q.events.TrackChange.Emit(TrackChangeEvent{Index: -1})
		return
	}
	q.events.TrackChange.Emit(TrackChangeEvent{Index: q.current, ID: id})
}

// normalizeIndices drops out-of-range and duplicate indices and sorts the
// rest in descending order.
func normalizeIndices(indices []int, n int) []int {
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < n {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	slices.Reverse(out)
	return out
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
