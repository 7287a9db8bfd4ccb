package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase(t *testing.T) {
	var b Base
	assert.False(t, b.IsFocused())

	b.SetSize(40, 12)
	b.SetFocused(true)

	assert.True(t, b.IsFocused())
	assert.Equal(t, 40, b.Width())
	assert.Equal(t, 12, b.Height())
	assert.Equal(t, 12-PanelOverhead, b.ListHeight())
}

func TestBase_ListHeightSmallPanel(t *testing.T) {
	var b Base
	b.SetSize(10, 3)
	assert.Negative(t, b.ListHeight())
}
