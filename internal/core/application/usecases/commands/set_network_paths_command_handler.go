package commands

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// SetNetworkPathsCommandHandler handles artwork file path updates.
// Path edits are routine and do not touch the order's history trail.
type SetNetworkPathsCommandHandler struct {
	uowFactory OrderUoWFactory
	ws         *workspace.Workspace
	publisher  ports.RealtimePublisher
}

// NewSetNetworkPathsCommandHandler creates a handler for path update operations.
func NewSetNetworkPathsCommandHandler(
	uowFactory OrderUoWFactory,
	ws *workspace.Workspace,
	publisher ports.RealtimePublisher,
) SetNetworkPathsCommandHandler {
	return SetNetworkPathsCommandHandler{
		uowFactory: uowFactory,
		ws:         ws,
		publisher:  publisher,
	}
}

// Handle processes the path update command.
func (h *SetNetworkPathsCommandHandler) Handle(ctx context.Context, cmd SetNetworkPathsCommand) error {
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

	if err := aggregate.SetNetworkPaths(cmd.Paths()); err != nil {
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

	h.publisher.PublishToast(ctx, actor.ID(), ports.Toast{
		Message:  "Caminhos de rede atualizados.",
		Severity: "success",
	})
	h.publisher.PublishRefresh(ctx, ports.TopicOrders)

	return nil
}
