package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrDeleteOrdersCommandIsNotConstructed = errors.New(
	"DeleteOrdersCommand must be created via NewDeleteOrdersCommand constructor",
)

// DeleteOrdersCommand represents a request to permanently delete one or more
// orders. Deletion is destructive and audited: every removed order leaves an
// entry in the global audit log.
type DeleteOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	actorID  string

	guard guard.ConstructorGuard
}

// NewDeleteOrdersCommand creates a command to delete the given orders.
// Returns an error if the id list is empty or any validation fails.
func NewDeleteOrdersCommand(orderIDs []kernel.UUID, actorID string) (DeleteOrdersCommand, error) {
	cmd := DeleteOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setActorID(actorID),
	); err != nil {
		return DeleteOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteOrdersCommandIsNotConstructed if validation fails.
func (c DeleteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrdersCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to delete.
func (c DeleteOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// ActorID returns the identifier of the acting user.
func (c DeleteOrdersCommand) ActorID() string {
	return c.actorID
}

func (c *DeleteOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIDs")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = append([]kernel.UUID(nil), orderIDs...)
	return nil
}

func (c *DeleteOrdersCommand) setActorID(actorID string) error {
	if actorID == "" {
		return errs.NewValueIsRequiredError("actorID")
	}

	c.actorID = actorID
	return nil
}
