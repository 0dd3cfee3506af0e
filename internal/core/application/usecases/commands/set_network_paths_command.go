package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrSetNetworkPathsCommandIsNotConstructed = errors.New(
	"SetNetworkPathsCommand must be created via NewSetNetworkPathsCommand constructor",
)

// SetNetworkPathsCommand represents a request to replace an order's artwork
// file locations. Paths are replaced as a whole set.
type SetNetworkPathsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	paths   []order.NetworkPath
	actorID string

	guard guard.ConstructorGuard
}

// NewSetNetworkPathsCommand creates a command to replace the file paths.
// An empty slice clears every path. Returns an error if any validation fails.
func NewSetNetworkPathsCommand(
	orderID kernel.UUID,
	paths []order.NetworkPath,
	actorID string,
) (SetNetworkPathsCommand, error) {
	cmd := SetNetworkPathsCommand{
		paths: append([]order.NetworkPath(nil), paths...),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return SetNetworkPathsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetNetworkPathsCommandIsNotConstructed if validation fails.
func (c SetNetworkPathsCommand) Validate() error {
	return c.guard.Validate(ErrSetNetworkPathsCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c SetNetworkPathsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Paths returns the replacement path set.
func (c SetNetworkPathsCommand) Paths() []order.NetworkPath {
	return c.paths
}

// ActorID returns the identifier of the acting user.
func (c SetNetworkPathsCommand) ActorID() string {
	return c.actorID
}

func (c *SetNetworkPathsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetNetworkPathsCommand) setActorID(actorID string) error {
	if actorID == "" {
		return errs.NewValueIsRequiredError("actorID")
	}

	c.actorID = actorID
	return nil
}
