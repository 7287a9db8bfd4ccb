package library

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Registry is the in-memory identity map of tracks and albums.
// It is not safe for concurrent mutation.
type Registry struct {
	tracks      map[int64]*Track
	albums      map[int64]*Album
	nextTrackID int64
	nextAlbumID int64
}

func NewRegistry() *Registry {
	return &Registry{
		tracks: make(map[int64]*Track),
		albums: make(map[int64]*Album),
	}
}

// NewTrack registers t under a fresh id and returns the stored track.
func (r *Registry) NewTrack(t Track) *Track {
	t.ID = r.nextTrackID
	r.nextTrackID++
	r.tracks[t.ID] = &t
	return &t
}

// NewAlbum registers an empty album under a fresh id.
func (r *Registry) NewAlbum(name, artist string) *Album {
	a := &Album{ID: r.nextAlbumID, Name: name, Artist: artist}
	r.nextAlbumID++
	r.albums[a.ID] = a
	return a
}

// PutTrack stores t under its own id, keeping later fresh ids above it.
func (r *Registry) PutTrack(t *Track) {
	r.tracks[t.ID] = t
	if t.ID >= r.nextTrackID {
		r.nextTrackID = t.ID + 1
	}
}

// PutAlbum stores a under its own id, keeping later fresh ids above it.
func (r *Registry) PutAlbum(a *Album) {
	r.albums[a.ID] = a
	if a.ID >= r.nextAlbumID {
		r.nextAlbumID = a.ID + 1
	}
}

func (r *Registry) Track(id int64) (*Track, bool) {
	t, ok := r.tracks[id]
	return t, ok
}

func (r *Registry) Album(id int64) (*Album, bool) {
	a, ok := r.albums[id]
	return a, ok
}

// Lookup returns the track or ErrTrackNotFound.
func (r *Registry) Lookup(id int64) (*Track, error) {
	t, ok := r.tracks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTrackNotFound, id)
	}
	return t, nil
}

// LookupAlbum returns the album or ErrAlbumNotFound.
func (r *Registry) LookupAlbum(id int64) (*Album, error) {
	a, ok := r.albums[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAlbumNotFound, id)
	}
	return a, nil
}

// TrackIDs returns every track id in ascending order.
func (r *Registry) TrackIDs() []int64 {
	return slices.Sorted(maps.Keys(r.tracks))
}

// AlbumIDs returns every album id in ascending order.
func (r *Registry) AlbumIDs() []int64 {
	return slices.Sorted(maps.Keys(r.albums))
}

// Albums returns the albums ordered by artist then name, case-insensitively.
func (r *Registry) Albums() []*Album {
	albums := slices.Collect(maps.Values(r.albums))
	slices.SortFunc(albums, func(a, b *Album) int {
		if c := strings.Compare(strings.ToLower(a.Artist), strings.ToLower(b.Artist)); c != 0 {
			return c
		}
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return albums
}

// Len returns the number of tracks.
func (r *Registry) Len() int {
	return len(r.tracks)
}

// AlbumCount returns the number of albums.
func (r *Registry) AlbumCount() int {
	return len(r.albums)
}

// RemoveTrack deletes a track and drops it from its album. Queues holding
// the id are left alone and skip it on lookup.
func (r *Registry) RemoveTrack(id int64) bool {
	t, ok := r.tracks[id]
	if !ok {
		return false
	}
	delete(r.tracks, id)
	if a, ok := r.albums[t.AlbumID]; ok {
		a.TrackIDs = slices.DeleteFunc(a.TrackIDs, func(x int64) bool { return x == id })
	}
	return true
}

// TrackDuration reports the duration of a track.
func (r *Registry) TrackDuration(id int64) (time.Duration, bool) {
	t, ok := r.tracks[id]
	if !ok {
		return 0, false
	}
	return t.Duration, true
}

// AlbumDuration sums the durations of an album's known tracks.
func (r *Registry) AlbumDuration(a *Album) time.Duration {
	var total time.Duration
	for _, id := range a.TrackIDs {
		if t, ok := r.tracks[id]; ok {
			total += t.Duration
		}
	}
	return total
}
