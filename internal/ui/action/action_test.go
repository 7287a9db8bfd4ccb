package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct{ n int }

func (ping) ActionType() string { return "test.ping" }

func TestCmd(t *testing.T) {
	cmd := Cmd("queuepanel", ping{n: 3})
	require.NotNil(t, cmd)

	msg, ok := cmd().(Msg)
	require.True(t, ok)
	assert.Equal(t, "queuepanel", msg.Source)
	assert.Equal(t, ping{n: 3}, msg.Action)
	assert.Equal(t, "test.ping", msg.Action.ActionType())
}
