// Package library holds the in-memory track and album registries, their
// sqlite store and the scanner that builds them from a music folder.
package library

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/llehouerou/shelf/internal/tags"
)

// Track is one audio file of the library.
type Track struct {
	ID       int64
	AlbumID  int64
	Path     string
	Duration time.Duration

	Disc int // 0 when absent
	No   int // 0 when absent

	Title    string
	Artist   string
	Lyrics   string
	Date     string
	Genre    string
	Composer string
}

// Picture is album artwork.
type Picture = tags.Picture

// Album groups the tracks sharing an album name and album artist.
type Album struct {
	ID       int64
	Name     string
	Artist   string
	Cover    *Picture
	TrackIDs []int64
}

// compareTracks orders tracks by disc, then number, then title.
func compareTracks(a, b *Track) int {
	if c := cmp.Compare(a.Disc, b.Disc); c != 0 {
		return c
	}
	if c := cmp.Compare(a.No, b.No); c != 0 {
		return c
	}
	return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
}

// SortAlbumTracks orders an album's track ids by disc, number and title.
// Ids missing from the registry sort last, in their current order.
func (r *Registry) SortAlbumTracks(a *Album) {
	slices.SortStableFunc(a.TrackIDs, func(x, y int64) int {
		tx, okx := r.tracks[x]
		ty, oky := r.tracks[y]
		switch {
		case !okx && !oky:
			return 0
		case !okx:
			return 1
		case !oky:
			return -1
		}
		return compareTracks(tx, ty)
	})
}
