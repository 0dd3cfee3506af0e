package commands

import (
	"context"
	"fmt"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/notification"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// AssignUserCommandHandler handles step assignment and unassignment.
// Assigning notifies the assignee; removing an assignment withdraws the
// pending notification so nobody chases withdrawn work.
type AssignUserCommandHandler struct {
	uowFactory OrderUoWFactory
	ws         *workspace.Workspace
	clock      ports.Clock
	publisher  ports.RealtimePublisher
}

// NewAssignUserCommandHandler creates a handler for assignment operations.
func NewAssignUserCommandHandler(
	uowFactory OrderUoWFactory,
	ws *workspace.Workspace,
	clock ports.Clock,
	publisher ports.RealtimePublisher,
) AssignUserCommandHandler {
	return AssignUserCommandHandler{
		uowFactory: uowFactory,
		ws:         ws,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
func (h *AssignUserCommandHandler) Handle(ctx context.Context, cmd AssignUserCommand) error {
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

	var assigneeName string
	if cmd.UserID() != "" {
		assignee, found := h.ws.Member(cmd.UserID())
		if !found {
			return errs.NewObjectNotFoundError("userID", cmd.UserID())
		}
		if !assignee.WorksInSector(cmd.Step().Key()) {
			return errs.NewValueIsInvalidErrorWithCause("userID",
				fmt.Errorf("%s does not work in sector %s", assignee.Nome(), cmd.Step().Key()))
		}
		assigneeName = assignee.Nome()
	}

	change, err := aggregate.Assign(
		cmd.Step(), cmd.UserID(), assigneeName, actor.Nome(), cmd.Note(), actor.ID(), h.clock.Now(),
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

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.ws.Put(aggregate)

	feed := h.ws.Feed()
	if cmd.UserID() == "" {
		// removal, or a redundant unassign of a step nobody held
		if change.Removed && change.PreviousAssigneeID != "" {
			feed.RetractAssignment(aggregate.ID().String(), change.PreviousAssigneeID)
		}
		h.publisher.PublishToast(ctx, actor.ID(), ports.Toast{
			Message:  "Atribuição removida.",
			Severity: "info",
		})
	} else {
		assigned, nErr := notification.NewAssignmentNotification(
			kernel.NewUUID().String(),
			aggregate.ID().String(),
			aggregate.OR(),
			actor.Nome(),
			cmd.UserID(),
			cmd.Step().Department(),
			h.clock.Now(),
		)
		if nErr == nil {
			feed.Publish(assigned)
		}
		h.publisher.PublishToast(ctx, actor.ID(), ports.Toast{
			Message:  fmt.Sprintf("Tarefa atribuída a %s", assigneeName),
			Severity: "success",
		})
	}

	h.publisher.PublishRefresh(ctx, ports.TopicNotifications)
	h.publisher.PublishRefresh(ctx, ports.TopicOrders)

	return nil
}
