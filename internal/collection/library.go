package collection

import (
	"errors"
	"slices"
)

// ErrNotFound is reported by callers when a collection path resolves to
// nothing.
var ErrNotFound = errors.New("collection not found")

// Library is the list of top-level collections.
type Library struct {
	Collections []*Collection
}

// Find follows path from the top-level collection named path[0].
func (l *Library) Find(path ...string) (*Collection, bool) {
	if len(path) == 0 {
		return nil, false
	}
	for _, c := range l.Collections {
		if c.Name == path[0] {
			return c.Find(path[1:]...)
		}
	}
	return nil, false
}

// Create returns the collection at path, creating missing levels.
// The bool reports whether anything was created.
func (l *Library) Create(path ...string) (*Collection, bool) {
	if len(path) == 0 {
		return nil, false
	}
	var created bool
	top, ok := l.Find(path[0])
	if !ok {
		top = New(path[0], nil)
		l.Collections = append(l.Collections, top)
		created = true
	}
	n := top
	for _, name := range path[1:] {
		child, ok := n.Child(name)
		if !ok {
			child = New(name, nil)
			n.AddCollection(child)
			created = true
		}
		n = child
	}
	return n, created
}

// Delete removes the collection at path with its descendants.
func (l *Library) Delete(path ...string) bool {
	c, ok := l.Find(path...)
	if !ok {
		return false
	}
	if p := c.Parent(); p != nil {
		return p.RemoveCollection(c)
	}
	l.Collections = slices.DeleteFunc(l.Collections, func(x *Collection) bool { return x == c })
	return true
}

// Snapshot captures every top-level collection.
func (l *Library) Snapshot() []Snapshot {
	out := make([]Snapshot, 0, len(l.Collections))
	for _, c := range l.Collections {
		out = append(out, c.Snapshot())
	}
	return out
}

// LibraryFromSnapshot rebuilds a library.
func LibraryFromSnapshot(snaps []Snapshot) *Library {
	l := &Library{Collections: make([]*Collection, 0, len(snaps))}
	for _, s := range snaps {
		l.Collections = append(l.Collections, FromSnapshot(s))
	}
	return l
}
