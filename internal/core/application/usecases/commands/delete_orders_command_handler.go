package commands

import (
	"context"
	"fmt"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/audit"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// DeleteOrdersCommandHandler handles audited bulk deletion of orders.
// Row removal and audit entries commit in one transaction so no deletion
// goes unrecorded.
type DeleteOrdersCommandHandler struct {
	uowFactory UoWFactory
	ws         *workspace.Workspace
	clock      ports.Clock
	publisher  ports.RealtimePublisher
}

// NewDeleteOrdersCommandHandler creates a handler for order deletion operations.
func NewDeleteOrdersCommandHandler(
	uowFactory UoWFactory,
	ws *workspace.Workspace,
	clock ports.Clock,
	publisher ports.RealtimePublisher,
) DeleteOrdersCommandHandler {
	return DeleteOrdersCommandHandler{
		uowFactory: uowFactory,
		ws:         ws,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle processes the deletion command.
func (h *DeleteOrdersCommandHandler) Handle(ctx context.Context, cmd DeleteOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, ok := h.ws.Member(cmd.ActorID())
	if !ok {
		return errs.NewObjectNotFoundError("actorID", cmd.ActorID())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	auditRepo := uow.AuditLogRepository()

	for _, id := range cmd.OrderIDs() {
		aggregate, found := h.ws.Order(id.String())
		if !found {
			return errs.NewObjectNotFoundError("orderID", id.String())
		}

		if err := orderRepo.Delete(ctx, id); err != nil {
			return err
		}

		entry, err := audit.NewEntry(
			kernel.NewUUID().String(),
			actor.ID(),
			actor.Nome(),
			h.clock.Now(),
			audit.ActionDeleteOrder,
			fmt.Sprintf("O.R %s (item %s) - %s", aggregate.OR(), aggregate.NumeroItem(), aggregate.Cliente()),
		)
		if err != nil {
			return err
		}
		if err = auditRepo.Add(ctx, entry); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, id := range cmd.OrderIDs() {
		h.ws.Remove(id.String())
	}

	h.publisher.PublishRefresh(ctx, ports.TopicOrders)
	h.publisher.PublishRefresh(ctx, ports.TopicLogs)

	return nil
}
