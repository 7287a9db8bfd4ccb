package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shelf/internal/library"
)

type fakeNotifier struct {
	sent   []Notification
	closed []uint32
	err    error
	nextID uint32
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sent = append(f.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeNotifier) Close(id uint32) error {
	f.closed = append(f.closed, id)
	return nil
}

func newCatalog(t *testing.T) (*library.Registry, []int64) {
	t.Helper()
	reg := library.NewRegistry()
	a := reg.NewAlbum("Blue Train", "John Coltrane")
	for _, title := range []string{"Blue Train", "Moment's Notice"} {
		tr := reg.NewTrack(library.Track{AlbumID: a.ID, Title: title, Artist: "John Coltrane"})
		a.TrackIDs = append(a.TrackIDs, tr.ID)
	}
	return reg, a.TrackIDs
}

func TestUrgencyValues(t *testing.T) {
	assert.Equal(t, Urgency(0), UrgencyLow)
	assert.Equal(t, Urgency(1), UrgencyNormal)
	assert.Equal(t, Urgency(2), UrgencyCritical)
}

func TestNowPlaying_AnnouncesEachTrackOnce(t *testing.T) {
	reg, ids := newCatalog(t)
	n := &fakeNotifier{}
	p := NewNowPlaying(n, reg, nil)

	p.TrackStarted(ids[0])
	p.TrackStarted(ids[0]) // resumed after pause
	p.TrackStarted(ids[1])

	require.Len(t, n.sent, 2)
	assert.Equal(t, "Blue Train", n.sent[0].Title)
	assert.Equal(t, "John Coltrane · Blue Train", n.sent[0].Body)
	assert.Equal(t, UrgencyLow, n.sent[0].Urgency)
	assert.Zero(t, n.sent[0].ReplacesID)

	assert.Equal(t, "Moment's Notice", n.sent[1].Title)
	assert.Equal(t, uint32(1), n.sent[1].ReplacesID, "replaces the previous notification")
}

func TestNowPlaying_Reset(t *testing.T) {
	reg, ids := newCatalog(t)
	n := &fakeNotifier{}
	p := NewNowPlaying(n, reg, nil)

	p.TrackStarted(ids[0])
	p.Reset()
	p.TrackStarted(ids[0])

	assert.Len(t, n.sent, 2)
}

func TestNowPlaying_UnknownTrack(t *testing.T) {
	reg, _ := newCatalog(t)
	n := &fakeNotifier{}
	p := NewNowPlaying(n, reg, nil)

	p.TrackStarted(99)

	assert.Empty(t, n.sent)
}

func TestNowPlaying_BodyWithoutArtist(t *testing.T) {
	reg := library.NewRegistry()
	a := reg.NewAlbum("Demos", "")
	tr := reg.NewTrack(library.Track{AlbumID: a.ID, Title: "take 3"})
	n := &fakeNotifier{}

	NewNowPlaying(n, reg, nil).TrackStarted(tr.ID)

	require.Len(t, n.sent, 1)
	assert.Equal(t, "Demos", n.sent[0].Body)
}

func TestNowPlaying_ErrorKeepsGoing(t *testing.T) {
	reg, ids := newCatalog(t)
	n := &fakeNotifier{err: errors.New("no notification daemon")}
	p := NewNowPlaying(n, reg, nil)

	p.TrackStarted(ids[0])
	n.err = nil
	p.TrackStarted(ids[1])

	require.Len(t, n.sent, 1)
	assert.Zero(t, n.sent[0].ReplacesID)
}

func TestNowPlaying_Close(t *testing.T) {
	reg, ids := newCatalog(t)
	n := &fakeNotifier{}
	p := NewNowPlaying(n, reg, nil)

	require.NoError(t, p.Close(), "nothing shown yet")
	assert.Empty(t, n.closed)

	p.TrackStarted(ids[0])
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, []uint32{1}, n.closed)
}
