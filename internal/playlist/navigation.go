package playlist

// ChangeTrack makes the track at index current. Out-of-range indices and
// the already-current index are ignored.
func (q *Queue) ChangeTrack(index int) {
	if index < 0 || index >= len(q.ids) || index == q.current {
		return
	}
	q.current = index
	q.emitTrackChange()
}

// SkipToEnd makes the last track current.
func (q *Queue) SkipToEnd() {
	q.ChangeTrack(len(q.ids) - 1)
}

// HasNext returns true if there's a track after the current one.
func (q *Queue) HasNext() bool {
	return !q.IsEmpty() && q.current < len(q.ids)-1
}

// HasPrevious returns true if there's a track before the current one.
func (q *Queue) HasPrevious() bool {
	return !q.IsEmpty() && q.current > 0
}

// Next advances to the next track and returns its id.
// Returns false at the end of the queue; it does not wrap.
func (q *Queue) Next() (int64, bool) {
	if !q.HasNext() {
		return 0, false
	}
	q.ChangeTrack(q.current + 1)
	return q.CurrentID()
}

// Previous moves back one track and returns its id.
// Returns false at the start of the queue.
func (q *Queue) Previous() (int64, bool) {
	if !q.HasPrevious() {
		return 0, false
	}
	q.ChangeTrack(q.current - 1)
	return q.CurrentID()
}

// AutoNext is called when the current track finished playing. It applies
// the loop mode and returns the track to play next, or false when playback
// should stop.
func (q *Queue) AutoNext() (int64, bool) {
	if q.IsEmpty() {
		return 0, false
	}

	if q.loop == LoopTrack {
		// Same index again: listeners reload the track.
		q.emitTrackChange()
		return q.CurrentID()
	}

	if q.HasNext() {
		return q.Next()
	}

	if q.loop == LoopQueue {
		q.current = 0
		q.emitTrackChange()
		return q.CurrentID()
	}

	return 0, false
}

// LoopMode returns the current loop mode.
func (q *Queue) LoopMode() LoopMode {
	return q.loop
}

// SetLoopMode changes the loop mode.
func (q *Queue) SetLoopMode(m LoopMode) {
	if m == q.loop {
		return
	}
	q.loop = m
	q.events.LoopModeChange.Emit(LoopModeEvent{Mode: m})
}

// CycleLoopMode switches to the next loop mode and returns it.
func (q *Queue) CycleLoopMode() LoopMode {
	q.SetLoopMode(q.loop.Next())
	return q.loop
}
