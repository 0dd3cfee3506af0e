package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrAdvanceStatusCommandIsNotConstructed = errors.New(
	"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
)

// AdvanceStatusCommand represents a request to change the status of one
// pipeline step of an order. Any status can be set from any status; the
// aggregate stamps work timestamps and archives completed expedition orders.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	step    order.Step
	next    order.Status
	actorID string

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand creates a command to set a step's status.
// Returns an error if any validation fails.
func NewAdvanceStatusCommand(
	orderID kernel.UUID,
	step order.Step,
	next order.Status,
	actorID string,
) (AdvanceStatusCommand, error) {
	cmd := AdvanceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStep(step),
		cmd.setNext(next),
		cmd.setActorID(actorID),
	); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceStatusCommandIsNotConstructed if validation fails.
func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c AdvanceStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Step returns the pipeline step being changed.
func (c AdvanceStatusCommand) Step() order.Step {
	return c.step
}

// Next returns the status being set.
func (c AdvanceStatusCommand) Next() order.Status {
	return c.next
}

// ActorID returns the identifier of the acting user.
func (c AdvanceStatusCommand) ActorID() string {
	return c.actorID
}

func (c *AdvanceStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceStatusCommand) setStep(step order.Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	c.step = step
	return nil
}

func (c *AdvanceStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}

func (c *AdvanceStatusCommand) setActorID(actorID string) error {
	if actorID == "" {
		return errs.NewValueIsRequiredError("actorID")
	}

	c.actorID = actorID
	return nil
}
