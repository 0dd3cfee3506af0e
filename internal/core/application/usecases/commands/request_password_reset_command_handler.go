package commands

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/notification"
	"printflow/internal/core/ports"
)

// RequestPasswordResetCommandHandler handles reset requests from the login
// screen. Known e-mails raise an urgent broadcast so an admin acts on it;
// unknown e-mails are silently ignored.
type RequestPasswordResetCommandHandler struct {
	ws        *workspace.Workspace
	clock     ports.Clock
	publisher ports.RealtimePublisher
}

// NewRequestPasswordResetCommandHandler creates a handler for reset requests.
func NewRequestPasswordResetCommandHandler(
	ws *workspace.Workspace,
	clock ports.Clock,
	publisher ports.RealtimePublisher,
) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		ws:        ws,
		clock:     clock,
		publisher: publisher,
	}
}

// Handle processes the reset request command.
func (h *RequestPasswordResetCommandHandler) Handle(ctx context.Context, cmd RequestPasswordResetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	member, ok := h.ws.MemberByEmail(cmd.Email())
	if !ok {
		return nil
	}

	reset, err := notification.NewPasswordResetNotification(
		kernel.NewUUID().String(), member.Nome(), member.Email(), h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if h.ws.Feed().Publish(reset) {
		h.publisher.PublishRefresh(ctx, ports.TopicNotifications)
	}

	return nil
}
