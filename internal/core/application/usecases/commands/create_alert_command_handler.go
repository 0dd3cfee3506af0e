package commands

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/notification"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// CreateAlertCommandHandler handles operator-written alerts.
// Alerts live only in the in-memory feed; nothing is persisted.
type CreateAlertCommandHandler struct {
	ws        *workspace.Workspace
	clock     ports.Clock
	publisher ports.RealtimePublisher
}

// NewCreateAlertCommandHandler creates a handler for manual alert operations.
func NewCreateAlertCommandHandler(
	ws *workspace.Workspace,
	clock ports.Clock,
	publisher ports.RealtimePublisher,
) CreateAlertCommandHandler {
	return CreateAlertCommandHandler{
		ws:        ws,
		clock:     clock,
		publisher: publisher,
	}
}

// Handle processes the manual alert command.
func (h *CreateAlertCommandHandler) Handle(ctx context.Context, cmd CreateAlertCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, ok := h.ws.Member(cmd.ActorID())
	if !ok {
		return errs.NewObjectNotFoundError("actorID", cmd.ActorID())
	}

	alert, err := notification.NewManualAlert(
		kernel.NewUUID().String(),
		cmd.Title(),
		cmd.Message(),
		cmd.Severity(),
		cmd.TargetUserID(),
		actor.Nome(),
		cmd.ReferenceDate(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	h.ws.Feed().PublishManual(alert)
	h.publisher.PublishRefresh(ctx, ports.TopicNotifications)

	return nil
}
