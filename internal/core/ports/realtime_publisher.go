package ports

import "context"

// Refresh topics pushed to connected clients. Clients react by re-fetching
// the named resource.
const (
	TopicOrders        = "orders"
	TopicNotifications = "notifications"
	TopicUsers         = "users"
	TopicLogs          = "logs"
)

// Toast is a transient on-screen message for one user.
type Toast struct {
	Message  string
	Severity string
}

// RealtimePublisher pushes events to connected clients. Implementations must
// tolerate slow or absent consumers; publishing is fire-and-forget from the
// command handlers' point of view.
type RealtimePublisher interface {
	// PublishToast delivers a transient message to one user's open sessions.
	PublishToast(ctx context.Context, userID string, toast Toast)

	// PublishRefresh tells every connected client that the named resource
	// changed and should be re-fetched.
	PublishRefresh(ctx context.Context, topic string)
}
