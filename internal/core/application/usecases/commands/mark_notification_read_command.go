package commands

import (
	"errors"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand represents a request to dismiss one
// notification for one user. An empty notificationID dismisses the user's
// whole feed. Read state is per member; broadcasts stay visible to everyone
// else.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID string
	userID         string

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to dismiss notifications.
// Returns an error if the user id is empty.
func NewMarkNotificationReadCommand(notificationID, userID string) (MarkNotificationReadCommand, error) {
	cmd := MarkNotificationReadCommand{
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkNotificationReadCommandIsNotConstructed if validation fails.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification to dismiss; empty means all.
func (c MarkNotificationReadCommand) NotificationID() string {
	return c.notificationID
}

// UserID returns the dismissing user.
func (c MarkNotificationReadCommand) UserID() string {
	return c.userID
}

func (c *MarkNotificationReadCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}
