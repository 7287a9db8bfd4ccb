package playlist

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorder_MoveToFront(t *testing.T) {
	// [A B C D], current D; move B and C to the front.
	q := newQueueWith(3, 'A', 'B', 'C', 'D')
	r := record(q)

	q.Reorder(0, 1, 2)

	assert.Equal(t, []int64{'B', 'C', 'A', 'D'}, q.IDs())
	assert.Equal(t, 3, q.CurrentIndex())
	require.Len(t, r.reorders, 1)
	ev := r.reorders[0]
	assert.Equal(t, []int{2, 0, 1, 3}, ev.Mapping)
	assert.Equal(t, []int{2, 1}, ev.From)
	assert.Equal(t, 0, ev.To)
	assert.Equal(t, 3, ev.Current)
	assert.Equal(t, ev.Mapping[3], ev.Current)
	assert.Equal(t, []string{"reorder"}, r.log, "reorder emits no count or track change")
}

func TestReorder_CurrentIsMoved(t *testing.T) {
	q := newQueueWith(1, 1, 2, 3, 4, 5)
	r := record(q)

	q.Reorder(5, 3, 1)

	assert.Equal(t, []int64{1, 3, 5, 2, 4}, q.IDs())
	assert.Equal(t, 3, q.CurrentIndex())
	id, _ := q.CurrentID()
	assert.Equal(t, int64(2), id)
	assert.Equal(t, []int{0, 3, 1, 4, 2}, r.reorders[0].Mapping)
}

func TestReorder_MoveDownPastCurrent(t *testing.T) {
	// Move A after C while C is current.
	q := newQueueWith(2, 'A', 'B', 'C', 'D')

	q.Reorder(3, 0)

	assert.Equal(t, []int64{'B', 'C', 'A', 'D'}, q.IDs())
	assert.Equal(t, 1, q.CurrentIndex())
}

func TestReorder_NoOps(t *testing.T) {
	q := newQueueWith(0, 1, 2, 3)
	r := record(q)

	q.Reorder(1)
	q.Reorder(0, 7, -2)

	assert.Empty(t, r.log)
	assert.Equal(t, []int64{1, 2, 3}, q.IDs())

	empty := New(nil)
	er := record(empty)
	empty.Reorder(0, 0)
	assert.Empty(t, er.log)
}

func TestReorder_DuplicateSources(t *testing.T) {
	q := newQueueWith(0, 1, 2, 3, 4)
	r := record(q)

	q.Reorder(0, 3, 3, 2)

	assert.Equal(t, []int64{3, 4, 1, 2}, q.IDs())
	assert.Equal(t, []int{3, 2}, r.reorders[0].From)
	assert.Equal(t, 4, q.Len())
}

func TestReorder_TargetClamped(t *testing.T) {
	q := newQueueWith(0, 1, 2, 3)

	q.Reorder(99, 0)

	assert.Equal(t, []int64{2, 3, 1}, q.IDs())
	assert.Equal(t, 2, q.CurrentIndex())
}

// expectedReorder computes the reorder result directly: moved elements in
// ascending order land before the element originally at target.
func expectedReorder(n, target int, sources []int) []int {
	isMoved := make([]bool, n)
	for _, s := range sources {
		isMoved[s] = true
	}
	var moved, rest []int
	for i := range n {
		if isMoved[i] {
			moved = append(moved, i)
		} else {
			rest = append(rest, i)
		}
	}
	ins := 0
	for _, i := range rest {
		if i < target {
			ins++
		}
	}
	out := slices.Clone(rest[:ins])
	out = append(out, moved...)
	return append(out, rest[ins:]...)
}

func TestReorder_Exhaustive(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for mask := 1; mask < 1<<n; mask++ {
			var sources []int
			for i := range n {
				if mask&(1<<i) != 0 {
					sources = append(sources, i)
				}
			}
			for target := 0; target <= n; target++ {
				for cursor := range n {
					ids := make([]int64, n)
					for i := range ids {
						ids[i] = int64(i)
					}
					q := newQueueWith(cursor, ids...)
					r := record(q)

					q.Reorder(target, sources...)

					want := expectedReorder(n, target, sources)
					got := q.IDs()
					for i := range want {
						if got[i] != int64(want[i]) {
							t.Fatalf("n=%d sources=%v target=%d: ids = %v, want %v", n, sources, target, got, want)
						}
					}
					ev := r.reorders[0]
					for newIdx, oldIdx := range want {
						if ev.Mapping[oldIdx] != newIdx {
							t.Fatalf("n=%d sources=%v target=%d: mapping = %v", n, sources, target, ev.Mapping)
						}
					}
					if id, _ := q.CurrentID(); id != int64(cursor) {
						t.Fatalf("n=%d sources=%v target=%d cursor=%d: current id = %d", n, sources, target, cursor, id)
					}
					if ev.Current != ev.Mapping[cursor] || ev.Current != q.CurrentIndex() {
						t.Fatalf("n=%d sources=%v target=%d cursor=%d: current = %d, mapping = %v", n, sources, target, cursor, ev.Current, ev.Mapping)
					}
				}
			}
		}
	}
}

func TestReorder_RandomProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for range 500 {
		n := 1 + rng.IntN(12)
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = int64(rng.IntN(4)) // duplicates on purpose
		}
		cursor := rng.IntN(n)
		q := newQueueWith(cursor, ids...)
		var ev ReorderEvent
		q.Events().Reorder.AddListener(func(e ReorderEvent) { ev = e })

		sources := make([]int, 1+rng.IntN(n))
		for i := range sources {
			sources[i] = rng.IntN(n)
		}
		q.Reorder(rng.IntN(n+1), sources...)

		post := q.IDs()
		require.Len(t, post, n)
		assertBijection(t, ev.Mapping, n)
		for old, newIdx := range ev.Mapping {
			require.Equal(t, ids[old], post[newIdx], "mapping must carry each element to its new slot")
		}
		require.Equal(t, ev.Mapping[cursor], q.CurrentIndex())
	}
}

func TestShuffle_Reverse(t *testing.T) {
	reverse := func(n int, swap func(i, j int)) {
		for i := range n / 2 {
			swap(i, n-1-i)
		}
	}
	q := New(nil, WithShuffler(reverse))
	q.Add(1, 2, 3, 4)
	q.ChangeTrack(1)
	r := record(q)

	q.Shuffle()

	assert.Equal(t, []int64{4, 3, 2, 1}, q.IDs())
	assert.Equal(t, 2, q.CurrentIndex())
	require.Len(t, r.shuffles, 1)
	assert.Equal(t, []int{3, 2, 1, 0}, r.shuffles[0].Mapping)
	assert.Equal(t, 2, r.shuffles[0].Current)
	assert.Equal(t, []string{"shuffle"}, r.log)
}

func TestShuffle_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	q := New(nil, WithShuffler(rng.Shuffle))
	ids := []int64{5, 5, 6, 7, 8, 9, 10, 10, 11}
	q.Add(ids...)
	q.ChangeTrack(4)
	var ev ShuffleEvent
	q.Events().Shuffle.AddListener(func(e ShuffleEvent) { ev = e })

	for range 50 {
		pre := q.IDs()
		preCursor := q.CurrentIndex()
		preID, _ := q.CurrentID()

		q.Shuffle()

		post := q.IDs()
		assertBijection(t, ev.Mapping, len(pre))
		for old, newIdx := range ev.Mapping {
			require.Equal(t, pre[old], post[newIdx])
		}
		require.ElementsMatch(t, pre, post)
		require.Equal(t, ev.Mapping[preCursor], q.CurrentIndex())
		postID, _ := q.CurrentID()
		require.Equal(t, preID, postID)
	}
}

func TestShuffle_Empty(t *testing.T) {
	q := New(nil)
	r := record(q)

	q.Shuffle()

	assert.Empty(t, r.log)
}

func assertBijection(t *testing.T, mapping []int, n int) {
	t.Helper()
	require.Len(t, mapping, n)
	seen := make([]bool, n)
	for _, v := range mapping {
		require.True(t, v >= 0 && v < n, "mapping value %d out of range", v)
		require.False(t, seen[v], "mapping value %d repeated", v)
		seen[v] = true
	}
}
