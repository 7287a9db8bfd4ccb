package playlist

import (
	"fmt"
	"time"
)

// recorder captures every event emitted by a queue, in emission order.
type recorder struct {
	log          []string
	adds         []AddEvent
	inserts      []InsertEvent
	removes      []RemoveEvent
	reorders     []ReorderEvent
	shuffles     []ShuffleEvent
	trackChanges []TrackChangeEvent
	counts       []CountChangeEvent
	loops        []LoopModeEvent
	clears       int
}

func record(q *Queue) *recorder {
	r := &recorder{}
	ev := q.Events()
	ev.Add.AddListener(func(e AddEvent) {
		r.log = append(r.log, "add")
		r.adds = append(r.adds, e)
	})
	ev.Insert.AddListener(func(e InsertEvent) {
		r.log = append(r.log, "insert")
		r.inserts = append(r.inserts, e)
	})
	ev.Remove.AddListener(func(e RemoveEvent) {
		r.log = append(r.log, "remove")
		r.removes = append(r.removes, e)
	})
	ev.Reorder.AddListener(func(e ReorderEvent) {
		r.log = append(r.log, "reorder")
		r.reorders = append(r.reorders, e)
	})
	ev.Shuffle.AddListener(func(e ShuffleEvent) {
		r.log = append(r.log, "shuffle")
		r.shuffles = append(r.shuffles, e)
	})
	ev.Clear.AddListener(func(ClearEvent) {
		r.log = append(r.log, "clear")
		r.clears++
	})
	ev.TrackChange.AddListener(func(e TrackChangeEvent) {
		r.log = append(r.log, "track")
		r.trackChanges = append(r.trackChanges, e)
	})
	ev.CountChange.AddListener(func(e CountChangeEvent) {
		r.log = append(r.log, "count")
		r.counts = append(r.counts, e)
	})
	ev.LoopModeChange.AddListener(func(e LoopModeEvent) {
		r.log = append(r.log, "loop")
		r.loops = append(r.loops, e)
	})
	return r
}

func (r *recorder) reset() {
	*r = recorder{}
}

// durations is a TrackLookup backed by a map of seconds.
type durations map[int64]int

func (d durations) TrackDuration(id int64) (time.Duration, bool) {
	s, ok := d[id]
	if !ok {
		return 0, false
	}
	return time.Duration(s) * time.Second, true
}

// newQueueWith creates a queue holding ids with the cursor at current.
func newQueueWith(current int, ids ...int64) *Queue {
	q := New(nil)
	q.Add(ids...)
	q.ChangeTrack(current)
	if len(ids) > 0 && q.CurrentIndex() != current {
		panic(fmt.Sprintf("cannot place cursor at %d", current))
	}
	return q
}

// checkCursor verifies the cursor invariant.
func checkCursor(q *Queue) error {
	n := q.Len()
	c := q.CurrentIndex()
	if n == 0 && c != -1 {
		return fmt.Errorf("empty queue has cursor %d", c)
	}
	if n > 0 && (c < 0 || c >= n) {
		return fmt.Errorf("cursor %d out of range [0,%d)", c, n)
	}
	return nil
}
