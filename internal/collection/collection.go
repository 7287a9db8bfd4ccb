// Package collection implements user-defined, nested groupings of tracks.
package collection

import (
	"maps"
	"slices"

	"github.com/llehouerou/shelf/internal/library"
)

// Collection is a named set of tracks with child collections. Its track
// list includes every descendant's tracks.
type Collection struct {
	Name string

	trackIDs map[int64]struct{}
	children []*Collection
	parent   *Collection

	cache []int64 // nil when stale
}

// New creates a collection holding ids and adopting children.
func New(name string, ids []int64, children ...*Collection) *Collection {
	c := &Collection{
		Name:     name,
		trackIDs: make(map[int64]struct{}, len(ids)),
	}
	for _, id := range ids {
		c.trackIDs[id] = struct{}{}
	}
	for _, child := range children {
		c.AddCollection(child)
	}
	return c
}

// AddCollection makes child a child of c, detaching it from any previous
// parent. It refuses, returning false, when child is c or one of its
// ancestors.
func (c *Collection) AddCollection(child *Collection) bool {
	for n := c; n != nil; n = n.parent {
		if n == child {
			return false
		}
	}
	if child.parent != nil {
		child.parent.detach(child)
	}
	child.parent = c
	c.children = append(c.children, child)
	c.invalidate()
	return true
}

// RemoveCollection detaches child from c.
func (c *Collection) RemoveCollection(child *Collection) bool {
	if child.parent != c {
		return false
	}
	c.detach(child)
	child.parent = nil
	return true
}

func (c *Collection) detach(child *Collection) {
	c.children = slices.DeleteFunc(c.children, func(x *Collection) bool { return x == child })
	c.invalidate()
}

// Add puts a track in the collection.
func (c *Collection) Add(id int64) {
	if _, ok := c.trackIDs[id]; ok {
		return
	}
	c.trackIDs[id] = struct{}{}
	c.invalidate()
}

// Remove takes a track out of the collection. It reports whether the track
// was a direct member.
func (c *Collection) Remove(id int64) bool {
	if _, ok := c.trackIDs[id]; !ok {
		return false
	}
	delete(c.trackIDs, id)
	c.invalidate()
	return true
}

// Has reports whether id is a direct member.
func (c *Collection) Has(id int64) bool {
	_, ok := c.trackIDs[id]
	return ok
}

// invalidate drops the cached track list of c and every ancestor.
func (c *Collection) invalidate() {
	for n := c; n != nil; n = n.parent {
		n.cache = nil
	}
}

func (c *Collection) Parent() *Collection {
	return c.parent
}

// Children returns a copy of the child list.
func (c *Collection) Children() []*Collection {
	return slices.Clone(c.children)
}

// Child returns the direct child with the given name.
func (c *Collection) Child(name string) (*Collection, bool) {
	for _, child := range c.children {
		if child.Name == name {
			return child, true
		}
	}
	return nil, false
}

// Find follows path through child names. An empty path returns c.
func (c *Collection) Find(path ...string) (*Collection, bool) {
	n := c
	for _, name := range path {
		child, ok := n.Child(name)
		if !ok {
			return nil, false
		}
		n = child
	}
	return n, true
}

// OwnTrackIDs returns the direct members in ascending order.
func (c *Collection) OwnTrackIDs() []int64 {
	return slices.Sorted(maps.Keys(c.trackIDs))
}

// TrackIDs returns the union of c's tracks and its descendants' in
// ascending order. The result is cached until c or a descendant changes.
func (c *Collection) TrackIDs() []int64 {
	if c.cache == nil {
		set := make(map[int64]struct{})
		c.gather(set)
		c.cache = append(make([]int64, 0, len(set)), slices.Sorted(maps.Keys(set))...)
	}
	return slices.Clone(c.cache)
}

func (c *Collection) gather(out map[int64]struct{}) {
	for id := range c.trackIDs {
		out[id] = struct{}{}
	}
	for _, child := range c.children {
		child.gather(out)
	}
}

// TrackResolver looks up tracks by id. *library.Registry implements it.
type TrackResolver interface {
	Track(id int64) (*library.Track, bool)
}

// AlbumIDs returns the albums of the collection's tracks in ascending order.
// Tracks the resolver does not know are skipped.
func (c *Collection) AlbumIDs(tracks TrackResolver) []int64 {
	set := make(map[int64]struct{})
	for _, id := range c.TrackIDs() {
		t, ok := tracks.Track(id)
		if !ok {
			continue
		}
		set[t.AlbumID] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}
