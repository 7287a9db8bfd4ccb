package playlist

import "slices"

// Reorder moves the tracks at sources so that they sit, in their original
// relative order, before the track originally at target. The queue length
// and the current track do not change; only positions do.
//
// Observers receive a mapping from every old position to its new one so
// they can reposition items instead of rebuilding them.
func (q *Queue) Reorder(target int, sources ...int) {
	from := normalizeIndices(sources, len(q.ids))
	if len(from) == 0 {
		return
	}
	target = clamp(target, 0, len(q.ids))
	n := len(from)

	// Position of the current track among the moved ones, in ascending
	// order, or -1 if it stays in place.
	moved := -1
	if k := slices.Index(from, q.current); k >= 0 {
		moved = n - 1 - k
	}

	identity := make([]int, len(q.ids))
	for i := range identity {
		identity[i] = i
	}

	removedIDs := make([]int64, 0, n)
	removedIdx := make([]int, 0, n)
	insertion := target
	cur := q.current
	for _, r := range from {
		if r < insertion {
			insertion--
		}
		if moved < 0 && r < cur {
			cur--
		}
		removedIDs = append(removedIDs, q.ids[r])
		removedIdx = append(removedIdx, identity[r])
		q.ids = slices.Delete(q.ids, r, r+1)
		identity = slices.Delete(identity, r, r+1)
	}
	slices.Reverse(removedIDs)
	slices.Reverse(removedIdx)
	q.ids = slices.Insert(q.ids, insertion, removedIDs...)
	identity = slices.Insert(identity, insertion, removedIdx...)

	if moved >= 0 {
		cur = insertion + moved
	} else if insertion <= cur {
		cur += n
	}
	q.current = cur

	q.events.Reorder.Emit(ReorderEvent{
		From:    from,
		To:      target,
		Current: cur,
		Mapping: invert(identity),
	})
}

// Shuffle randomly permutes the queue. The current track stays current at
// its new position.
func (q *Queue) Shuffle() {
	if q.IsEmpty() {
		return
	}

	order := make([]int, len(q.ids))
	for i := range order {
		order[i] = i
	}
	q.shuffler(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	ids := make([]int64, len(q.ids))
	for newIdx, oldIdx := range order {
		ids[newIdx] = q.ids[oldIdx]
	}
	mapping := invert(order)
	q.ids = ids
	q.current = mapping[q.current]

	q.events.Shuffle.Emit(ShuffleEvent{Mapping: mapping, Current: q.current})
}

// invert turns a "new position -> old position" table into
// "old position -> new position".
func invert(order []int) []int {
	mapping := make([]int, len(order))
	for newIdx, oldIdx := range order {
		mapping[oldIdx] = newIdx
	}
	return mapping
}
