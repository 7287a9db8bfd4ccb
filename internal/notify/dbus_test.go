//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBusNotifier(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier := New()
	id, err := notifier.Notify(Notification{Title: "shelf test", Timeout: 1000})
	if err != nil {
		t.Skipf("no notification service: %v", err)
	}
	assert.NotZero(t, id)

	replaced, err := notifier.Notify(Notification{Title: "shelf test 2", Timeout: 1000, ReplacesID: id})
	require.NoError(t, err)
	assert.Equal(t, id, replaced)

	assert.NoError(t, notifier.Close(replaced))
}
