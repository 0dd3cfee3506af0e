package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrAssignUserCommandIsNotConstructed = errors.New(
	"AssignUserCommand must be created via NewAssignUserCommand constructor",
)

// AssignUserCommand represents a request to assign a team member to one
// pipeline step of an order, or to remove the current assignment.
type AssignUserCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	step    order.Step
	userID  string
	note    string
	actorID string

	guard guard.ConstructorGuard
}

// NewAssignUserCommand creates a command to (un)assign a step.
// An empty userID removes the step's current assignment.
// Returns an error if any validation fails.
func NewAssignUserCommand(
	orderID kernel.UUID,
	step order.Step,
	userID, note, actorID string,
) (AssignUserCommand, error) {
	cmd := AssignUserCommand{
		userID: userID,
		note:   note,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStep(step),
		cmd.setActorID(actorID),
	); err != nil {
		return AssignUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignUserCommandIsNotConstructed if validation fails.
func (c AssignUserCommand) Validate() error {
	return c.guard.Validate(ErrAssignUserCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c AssignUserCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Step returns the pipeline step being (un)assigned.
func (c AssignUserCommand) Step() order.Step {
	return c.step
}

// UserID returns the assignee identifier; empty means remove.
func (c AssignUserCommand) UserID() string {
	return c.userID
}

// Note returns the optional instructions for the assignee.
func (c AssignUserCommand) Note() string {
	return c.note
}

// ActorID returns the identifier of the assigning user.
func (c AssignUserCommand) ActorID() string {
	return c.actorID
}

func (c *AssignUserCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignUserCommand) setStep(step order.Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	c.step = step
	return nil
}

func (c *AssignUserCommand) setActorID(actorID string) error {
	if actorID == "" {
		return errs.NewValueIsRequiredError("actorID")
	}

	c.actorID = actorID
	return nil
}
