package queuepanel

import "github.com/llehouerou/shelf/internal/playlist"

// Recorder buffers the queue events that affect panel positions. Listeners
// only append; the owner drains the buffer once its update is done and
// passes the events to Apply in order.
type Recorder struct {
	pending []any
}

// Record subscribes a new Recorder to q.
func Record(q *playlist.Queue) *Recorder {
	r := &Recorder{}
	ev := q.Events()
	ev.Add.AddListener(func(e playlist.AddEvent) { r.push(e) })
	ev.Insert.AddListener(func(e playlist.InsertEvent) { r.push(e) })
	ev.Remove.AddListener(func(e playlist.RemoveEvent) { r.push(e) })
	ev.Reorder.AddListener(func(e playlist.ReorderEvent) { r.push(e) })
	ev.Shuffle.AddListener(func(e playlist.ShuffleEvent) { r.push(e) })
	ev.Clear.AddListener(func(e playlist.ClearEvent) { r.push(e) })
	ev.TrackChange.AddListener(func(e playlist.TrackChangeEvent) { r.push(e) })
	return r
}

func (r *Recorder) push(e any) {
	r.pending = append(r.pending, e)
}

// Drain returns the buffered events and empties the buffer.
func (r *Recorder) Drain() []any {
	out := r.pending
	r.pending = nil
	return out
}

// ApplyAll applies events in order.
func (m Model) ApplyAll(events []any) Model {
	for _, e := range events {
		m = m.Apply(e)
	}
	return m
}

// Apply moves the cursor and selection to follow a queue event. Events
// must be applied in emission order; unknown values are ignored. The panel
// tracks the queue length through the events so that intermediate steps
// clamp against the length the queue had at that point.
func (m Model) Apply(ev any) Model {
	switch e := ev.(type) {
	case playlist.AddEvent:
		m.length += len(e)
	case playlist.InsertEvent:
		m.length += len(e.Tracks)
		m.cursor.Inserted(e.To, len(e.Tracks))
		m.selected = shiftSelection(m.selected, e.To, len(e.Tracks))
	case playlist.RemoveEvent:
		m.length -= len(e)
		m.cursor.Removed(e, m.length)
		m.selected = removeFromSelection(m.selected, e)
	case playlist.ReorderEvent:
		m.cursor.Remap(e.Mapping)
		m.selected = remapSelection(m.selected, e.Mapping)
	case playlist.ShuffleEvent:
		m.cursor.Remap(e.Mapping)
		m.selected = remapSelection(m.selected, e.Mapping)
	case playlist.ClearEvent:
		m.length = 0
		m.cursor.Reset()
		m.selected = make(map[int]bool)
	case playlist.TrackChangeEvent:
		if e.HasTrack() && len(m.selected) == 0 {
			m.cursor.Jump(e.Index, m.length, m.ListHeight())
		}
	default:
		return m
	}
	m.cursor.ClampToBounds(m.length)
	m.cursor.EnsureVisible(m.length, m.ListHeight())
	return m
}

func shiftSelection(sel map[int]bool, at, n int) map[int]bool {
	out := make(map[int]bool, len(sel))
	for i := range sel {
		if i >= at {
			i += n
		}
		out[i] = true
	}
	return out
}

func removeFromSelection(sel map[int]bool, removed []int) map[int]bool {
	gone := make(map[int]bool, len(removed))
	for _, r := range removed {
		gone[r] = true
	}
	out := make(map[int]bool, len(sel))
	for i := range sel {
		if gone[i] {
			continue
		}
		below := 0
		for _, r := range removed {
			if r < i {
				below++
			}
		}
		out[i-below] = true
	}
	return out
}

func remapSelection(sel map[int]bool, mapping []int) map[int]bool {
	out := make(map[int]bool, len(sel))
	for i := range sel {
		if i < len(mapping) {
			out[mapping[i]] = true
		}
	}
	return out
}
