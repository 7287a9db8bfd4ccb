package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shelf/internal/library"
)

func tree() (root, jazz, bop *Collection) {
	bop = New("Bebop", []int64{5, 6})
	jazz = New("Jazz", []int64{3, 4}, bop)
	root = New("Favourites", []int64{1, 4}, jazz)
	return root, jazz, bop
}

func TestCollection_TrackIDsUnion(t *testing.T) {
	root, jazz, bop := tree()

	assert.Equal(t, []int64{1, 3, 4, 5, 6}, root.TrackIDs())
	assert.Equal(t, []int64{3, 4, 5, 6}, jazz.TrackIDs())
	assert.Equal(t, []int64{5, 6}, bop.TrackIDs())
	assert.Equal(t, []int64{1, 4}, root.OwnTrackIDs())
}

func TestCollection_CacheInvalidatedUpward(t *testing.T) {
	root, jazz, bop := tree()
	_ = root.TrackIDs()
	_ = jazz.TrackIDs()

	bop.Add(9)
	assert.Contains(t, root.TrackIDs(), int64(9))
	assert.Contains(t, jazz.TrackIDs(), int64(9))

	require.True(t, bop.Remove(5))
	assert.NotContains(t, root.TrackIDs(), int64(5))

	assert.False(t, bop.Remove(5), "second remove reports false")
	assert.False(t, root.Remove(3), "3 belongs to a child, not root")
}

func TestCollection_TrackIDsIsACopy(t *testing.T) {
	root, _, _ := tree()
	ids := root.TrackIDs()
	ids[0] = 100

	assert.Equal(t, int64(1), root.TrackIDs()[0])
}

func TestCollection_AddCollectionInvalidates(t *testing.T) {
	root, _, _ := tree()
	_ = root.TrackIDs()

	root.AddCollection(New("Blues", []int64{42}))

	assert.Contains(t, root.TrackIDs(), int64(42))
}

func TestCollection_Reparent(t *testing.T) {
	root, jazz, bop := tree()

	require.True(t, root.AddCollection(bop))

	assert.Same(t, root, bop.Parent())
	assert.Empty(t, jazz.Children())
	assert.Equal(t, []int64{3, 4}, jazz.TrackIDs())
	assert.Len(t, root.Children(), 2)

	require.True(t, root.RemoveCollection(bop))
	assert.Nil(t, bop.Parent())
	assert.NotContains(t, root.TrackIDs(), int64(5))
	assert.False(t, jazz.RemoveCollection(bop))
}

func TestCollection_AddCollectionRefusesCycles(t *testing.T) {
	root, jazz, bop := tree()

	assert.False(t, bop.AddCollection(bop), "itself")
	assert.False(t, bop.AddCollection(jazz), "its parent")
	assert.False(t, bop.AddCollection(root), "its grandparent")

	assert.Same(t, jazz, bop.Parent())
	assert.Same(t, root, jazz.Parent())
	assert.Nil(t, root.Parent())
	assert.Empty(t, bop.Children())
	assert.Equal(t, []int64{1, 3, 4, 5, 6}, root.TrackIDs())
	assert.Equal(t, []int64{5, 6}, bop.TrackIDs())
}

func TestCollection_Find(t *testing.T) {
	root, jazz, bop := tree()

	got, ok := root.Find("Jazz", "Bebop")
	require.True(t, ok)
	assert.Same(t, bop, got)

	got, ok = root.Find()
	require.True(t, ok)
	assert.Same(t, root, got)

	_, ok = jazz.Find("Swing")
	assert.False(t, ok)
}

func TestCollection_AlbumIDs(t *testing.T) {
	reg := library.NewRegistry()
	a := reg.NewAlbum("A", "X")
	b := reg.NewAlbum("B", "X")
	t1 := reg.NewTrack(library.Track{AlbumID: a.ID})
	t2 := reg.NewTrack(library.Track{AlbumID: a.ID})
	t3 := reg.NewTrack(library.Track{AlbumID: b.ID})

	c := New("mix", []int64{t3.ID, t1.ID}, New("inner", []int64{t2.ID, 999}))

	assert.Equal(t, []int64{a.ID, b.ID}, c.AlbumIDs(reg))
}

func TestCollection_Snapshot(t *testing.T) {
	root, _, _ := tree()

	snap := root.Snapshot()
	rebuilt := FromSnapshot(snap)

	assert.Equal(t, snap, rebuilt.Snapshot())
	assert.Equal(t, root.TrackIDs(), rebuilt.TrackIDs())

	bop, ok := rebuilt.Find("Jazz", "Bebop")
	require.True(t, ok)
	assert.Equal(t, "Jazz", bop.Parent().Name)
}
