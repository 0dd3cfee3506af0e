package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new work order line
// item. Several line items may share an O.R. number; each is its own order
// aggregate moving through the pipeline independently.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "1042", "1", "ACME Ltda", "Paulo",
//	    "Banner 3x1m", "2025-03-20", order.PriorityAlta, "u1")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, ws, clock, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	or          string
	numeroItem  string
	cliente     string
	vendedor    string
	item        string
	dataEntrega string
	priority    order.Priority
	actorID     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new work order.
// priority may be order.PriorityUnknown, in which case the default (Média)
// applies. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	or, numeroItem, cliente, vendedor, item, dataEntrega string,
	priority order.Priority,
	actorID string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		numeroItem: numeroItem,
		guard:      guard.NewConstructorGuard(),
	}

	if priority == order.PriorityUnknown {
		priority = order.DefaultPriority()
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOR(or),
		cmd.setCliente(cliente),
		cmd.setVendedor(vendedor),
		cmd.setItem(item),
		cmd.setDataEntrega(dataEntrega),
		cmd.setPriority(priority),
		cmd.setActorID(actorID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OR returns the O.R. number shared by the line items of one sale.
func (c CreateOrderCommand) OR() string {
	return c.or
}

// NumeroItem returns the line-item reference, possibly empty.
func (c CreateOrderCommand) NumeroItem() string {
	return c.numeroItem
}

// Cliente returns the client name.
func (c CreateOrderCommand) Cliente() string {
	return c.cliente
}

// Vendedor returns the responsible salesperson.
func (c CreateOrderCommand) Vendedor() string {
	return c.vendedor
}

// Item returns the free-text item description.
func (c CreateOrderCommand) Item() string {
	return c.item
}

// DataEntrega returns the delivery date in YYYY-MM-DD format.
func (c CreateOrderCommand) DataEntrega() string {
	return c.dataEntrega
}

// Priority returns the order priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// ActorID returns the identifier of the creating user.
func (c CreateOrderCommand) ActorID() string {
	return c.actorID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOR(or string) error {
	if or == "" {
		return errs.NewValueIsRequiredError("or")
	}

	c.or = or
	return nil
}

func (c *CreateOrderCommand) setCliente(cliente string) error {
	if cliente == "" {
		return errs.NewValueIsRequiredError("cliente")
	}

	c.cliente = cliente
	return nil
}

func (c *CreateOrderCommand) setVendedor(vendedor string) error {
	if vendedor == "" {
		return errs.NewValueIsRequiredError("vendedor")
	}

	c.vendedor = vendedor
	return nil
}

func (c *CreateOrderCommand) setItem(item string) error {
	if item == "" {
		return errs.NewValueIsRequiredError("item")
	}

	c.item = item
	return nil
}

func (c *CreateOrderCommand) setDataEntrega(dataEntrega string) error {
	if dataEntrega == "" {
		return errs.NewValueIsRequiredError("dataEntrega")
	}

	c.dataEntrega = dataEntrega
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID string) error {
	if actorID == "" {
		return errs.NewValueIsRequiredError("actorID")
	}

	c.actorID = actorID
	return nil
}
