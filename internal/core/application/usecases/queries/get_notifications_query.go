package queries

import (
	"errors"

	"printflow/internal/core/domain/model/notification"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves one user's visible notification feed.
type GetNotificationsQuery struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for one user's feed.
// Returns an error if the user id is empty.
func NewGetNotificationsQuery(userID string) (GetNotificationsQuery, error) {
	if userID == "" {
		return GetNotificationsQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetNotificationsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotificationsQueryIsNotConstructed if validation fails.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the user whose feed is requested.
func (q GetNotificationsQuery) UserID() string {
	return q.userID
}

// GetNotificationsQueryResponse holds one user's visible feed.
type GetNotificationsQueryResponse struct {
	// Notifications come manual-first, then by severity, urgent to info.
	Notifications []*notification.Notification

	// UnreadCount is the badge value: the number of visible entries.
	UnreadCount int
}
