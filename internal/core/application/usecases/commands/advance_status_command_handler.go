package commands

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// AdvanceStatusCommandHandler handles pipeline step status changes.
// Starting work withdraws the assignee's pending task notification; completing
// the expedition step archives the order.
type AdvanceStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	ws         *workspace.Workspace
	clock      ports.Clock
	publisher  ports.RealtimePublisher
}

// NewAdvanceStatusCommandHandler creates a handler for status change operations.
func NewAdvanceStatusCommandHandler(
	uowFactory OrderUoWFactory,
	ws *workspace.Workspace,
	clock ports.Clock,
	publisher ports.RealtimePublisher,
) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory: uowFactory,
		ws:         ws,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
func (h *AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, ok := h.ws.Member(cmd.ActorID())
	if !ok {
		return errs.NewObjectNotFoundError("actorID", cmd.ActorID())
	}

	aggregate, ok := h.ws.Order(cmd.OrderID().String())
	if !ok {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID().String())
	}

	change, err := aggregate.AdvanceStatus(cmd.Step(), cmd.Next(), actor.ID(), actor.Nome(), h.clock.Now())
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

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.ws.Put(aggregate)

	// the assignee picked up the work, their task notification is obsolete
	if change.StartedAssigneeID != "" {
		h.ws.Feed().RetractAssignment(aggregate.ID().String(), change.StartedAssigneeID)
		h.publisher.PublishRefresh(ctx, ports.TopicNotifications)
	}

	if change.Archived {
		h.publisher.PublishToast(ctx, actor.ID(), ports.Toast{
			Message:  "FINALIZADO E ARQUIVADO",
			Severity: "success",
		})
	}

	h.publisher.PublishRefresh(ctx, ports.TopicOrders)

	return nil
}
