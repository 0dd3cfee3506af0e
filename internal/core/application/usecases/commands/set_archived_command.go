package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrSetArchivedCommandIsNotConstructed = errors.New(
	"SetArchivedCommand must be created via NewSetArchivedCommand constructor",
)

// SetArchivedCommand represents an explicit request to archive an order or
// bring it back to the active board. Distinct from the automatic archival
// that happens when the expedition step completes.
type SetArchivedCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	archived bool
	actorID  string

	guard guard.ConstructorGuard
}

// NewSetArchivedCommand creates a command to toggle an order's archival.
// Returns an error if any validation fails.
func NewSetArchivedCommand(orderID kernel.UUID, archived bool, actorID string) (SetArchivedCommand, error) {
	cmd := SetArchivedCommand{
		archived: archived,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return SetArchivedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetArchivedCommandIsNotConstructed if validation fails.
func (c SetArchivedCommand) Validate() error {
	return c.guard.Validate(ErrSetArchivedCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c SetArchivedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Archived returns the desired archival state.
func (c SetArchivedCommand) Archived() bool {
	return c.archived
}

// ActorID returns the identifier of the acting user.
func (c SetArchivedCommand) ActorID() string {
	return c.actorID
}

func (c *SetArchivedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetArchivedCommand) setActorID(actorID string) error {
	if actorID == "" {
		return errs.NewValueIsRequiredError("actorID")
	}

	c.actorID = actorID
	return nil
}
