// Package ui holds what the shelf panels share: layout constants and the
// embeddable Base.
package ui

const (
	// ScrollMargin is the number of rows kept visible around the cursor.
	ScrollMargin = 5

	// BorderHeight is the space a rounded border takes on each axis.
	BorderHeight = 2

	// HeaderHeight covers a panel title and its separator.
	HeaderHeight = 2

	// PanelOverhead is what a list panel loses to its border and header.
	PanelOverhead = BorderHeight + HeaderHeight

	// MinProgressBarWidth is below which the player bar drops its progress bar.
	MinProgressBarWidth = 5
)
