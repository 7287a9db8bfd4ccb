package collection

// Snapshot is the serializable form of a collection tree.
type Snapshot struct {
	Name        string     `json:"name"`
	TrackIDs    []int64    `json:"trackIds"`
	Collections []Snapshot `json:"collections"`
}

// Snapshot captures c and its descendants.
func (c *Collection) Snapshot() Snapshot {
	s := Snapshot{
		Name:        c.Name,
		TrackIDs:    append([]int64{}, c.OwnTrackIDs()...),
		Collections: make([]Snapshot, 0, len(c.children)),
	}
	for _, child := range c.children {
		s.Collections = append(s.Collections, child.Snapshot())
	}
	return s
}

// FromSnapshot rebuilds a collection tree.
func FromSnapshot(s Snapshot) *Collection {
	children := make([]*Collection, 0, len(s.Collections))
	for _, cs := range s.Collections {
		children = append(children, FromSnapshot(cs))
	}
	return New(s.Name, s.TrackIDs, children...)
}
