package commands

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/notification"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start with every pipeline step Pendente and a creation entry in
// their history; the pre-press sector is notified about the new work.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ws         *workspace.Workspace
	clock      ports.Clock
	publisher  ports.RealtimePublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	ws *workspace.Workspace,
	clock ports.Clock,
	publisher ports.RealtimePublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ws:         ws,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// Persists the new order, updates the in-memory snapshot and broadcasts a
// creation notification targeted at the pre-press sector.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, ok := h.ws.Member(cmd.ActorID())
	if !ok {
		return errs.NewObjectNotFoundError("actorID", cmd.ActorID())
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OR(),
		cmd.NumeroItem(),
		cmd.Cliente(),
		cmd.Vendedor(),
		cmd.Item(),
		cmd.DataEntrega(),
		cmd.Priority(),
		actor.ID(),
		actor.Nome(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.ws.Put(newOrder)

	created, err := notification.NewOrderCreatedNotification(
		kernel.NewUUID().String(), newOrder.OR(), newOrder.Cliente(), h.clock.Now(),
	)
	if err == nil && h.ws.Feed().Publish(created) {
		h.publisher.PublishRefresh(ctx, ports.TopicNotifications)
	}
	h.publisher.PublishRefresh(ctx, ports.TopicOrders)

	return nil
}
