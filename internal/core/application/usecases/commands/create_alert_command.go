package commands

import (
	"errors"

	"printflow/internal/core/domain/model/notification"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrCreateAlertCommandIsNotConstructed = errors.New(
	"CreateAlertCommand must be created via NewCreateAlertCommand constructor",
)

// CreateAlertCommand represents an operator-written alert for the whole team
// or one member. Manual alerts always reach the feed, even when an identical
// one already exists.
type CreateAlertCommand struct { //nolint:recvcheck //using for validation
	title         string
	message       string
	severity      notification.Severity
	targetUserID  string
	referenceDate string
	actorID       string

	guard guard.ConstructorGuard
}

// NewCreateAlertCommand creates a command to publish a manual alert.
// targetUserID may be notification.TargetAll for a broadcast; referenceDate
// is optional. Returns an error if any validation fails.
func NewCreateAlertCommand(
	title, message string,
	severity notification.Severity,
	targetUserID, referenceDate, actorID string,
) (CreateAlertCommand, error) {
	cmd := CreateAlertCommand{
		referenceDate: referenceDate,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTitle(title),
		cmd.setMessage(message),
		cmd.setSeverity(severity),
		cmd.setTargetUserID(targetUserID),
		cmd.setActorID(actorID),
	); err != nil {
		return CreateAlertCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAlertCommandIsNotConstructed if validation fails.
func (c CreateAlertCommand) Validate() error {
	return c.guard.Validate(ErrCreateAlertCommandIsNotConstructed)
}

// Title returns the alert headline.
func (c CreateAlertCommand) Title() string {
	return c.title
}

// Message returns the alert body.
func (c CreateAlertCommand) Message() string {
	return c.message
}

// Severity returns the alert urgency.
func (c CreateAlertCommand) Severity() notification.Severity {
	return c.severity
}

// TargetUserID returns the recipient, or notification.TargetAll.
func (c CreateAlertCommand) TargetUserID() string {
	return c.targetUserID
}

// ReferenceDate returns the optional date the alert refers to.
func (c CreateAlertCommand) ReferenceDate() string {
	return c.referenceDate
}

// ActorID returns the identifier of the sending user.
func (c CreateAlertCommand) ActorID() string {
	return c.actorID
}

func (c *CreateAlertCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateAlertCommand) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.message = message
	return nil
}

func (c *CreateAlertCommand) setSeverity(severity notification.Severity) error {
	if err := severity.Validate(); err != nil {
		return err
	}

	c.severity = severity
	return nil
}

func (c *CreateAlertCommand) setTargetUserID(targetUserID string) error {
	if targetUserID == "" {
		return errs.NewValueIsRequiredError("targetUserID")
	}

	c.targetUserID = targetUserID
	return nil
}

func (c *CreateAlertCommand) setActorID(actorID string) error {
	if actorID == "" {
		return errs.NewValueIsRequiredError("actorID")
	}

	c.actorID = actorID
	return nil
}
