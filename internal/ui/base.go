package ui

// Base holds the size and focus state shared by the bordered list panels.
// Panels embed it and get SetSize, SetFocused and the dimension getters.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the outer dimensions, border included.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int {
	return b.width
}

func (b Base) Height() int {
	return b.height
}

// ListHeight is the number of list rows left inside the border and header.
// It can be zero or negative for very small panels.
func (b Base) ListHeight() int {
	return b.height - PanelOverhead
}
