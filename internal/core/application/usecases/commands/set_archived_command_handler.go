package commands

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// SetArchivedCommandHandler handles manual archival toggles.
type SetArchivedCommandHandler struct {
	uowFactory OrderUoWFactory
	ws         *workspace.Workspace
	clock      ports.Clock
	publisher  ports.RealtimePublisher
}

// NewSetArchivedCommandHandler creates a handler for archival operations.
func NewSetArchivedCommandHandler(
	uowFactory OrderUoWFactory,
	ws *workspace.Workspace,
	clock ports.Clock,
	publisher ports.RealtimePublisher,
) SetArchivedCommandHandler {
	return SetArchivedCommandHandler{
		uowFactory: uowFactory,
		ws:         ws,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle processes the archival command.
func (h *SetArchivedCommandHandler) Handle(ctx context.Context, cmd SetArchivedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, ok := h.ws.Member(cmd.ActorID()); !ok {
		return errs.NewObjectNotFoundError("actorID", cmd.ActorID())
	}

	aggregate, ok := h.ws.Order(cmd.OrderID().String())
	if !ok {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID().String())
	}

	if err := aggregate.SetArchived(cmd.Archived(), h.clock.Now()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.ws.Put(aggregate)
	h.publisher.PublishRefresh(ctx, ports.TopicOrders)

	return nil
}
