package cursor

// The methods below keep the cursor on the same item while the list it
// points into is edited elsewhere. Offsets are fixed up by the next
// EnsureVisible.

// Remap moves the cursor through a permutation where mapping[old] = new.
func (c *Cursor) Remap(mapping []int) {
	if c.pos >= 0 && c.pos < len(mapping) {
		c.pos = mapping[c.pos]
	}
}

// Inserted shifts the cursor when n items were inserted at index at, at or
// before it.
func (c *Cursor) Inserted(at, n int) {
	if n > 0 && c.pos >= at {
		c.pos += n
	}
}

// Removed adjusts the cursor after the items at indices (pre-removal
// positions, any order) were deleted, leaving newLen items. A cursor on a
// removed item lands on the next survivor, or the last item.
func (c *Cursor) Removed(indices []int, newLen int) {
	before := 0
	for _, i := range indices {
		if i < c.pos {
			before++
		}
	}
	c.pos -= before
	c.ClampToBounds(newLen)
}
