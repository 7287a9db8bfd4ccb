// Package notify sends desktop notifications over D-Bus.
package notify

// Urgency levels understood by freedesktop notification daemons.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is one desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string // icon name or image path
	Timeout    int32  // ms, -1 = server default, 0 = never expire
	ReplacesID uint32 // 0 opens a new notification
	Urgency    Urgency
}

// Notifier sends desktop notifications. Without a notification service
// Notify returns 0 and no error.
type Notifier interface {
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

type stubNotifier struct{}

func (stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (stubNotifier) Close(uint32) error                  { return nil }
