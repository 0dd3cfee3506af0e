package commands

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/ports"
)

// MarkNotificationReadCommandHandler handles notification dismissal.
type MarkNotificationReadCommandHandler struct {
	ws        *workspace.Workspace
	publisher ports.RealtimePublisher
}

// NewMarkNotificationReadCommandHandler creates a handler for dismissals.
func NewMarkNotificationReadCommandHandler(
	ws *workspace.Workspace,
	publisher ports.RealtimePublisher,
) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		ws:        ws,
		publisher: publisher,
	}
}

// Handle processes the dismissal command.
func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	feed := h.ws.Feed()
	if cmd.NotificationID() == "" {
		feed.MarkAllRead(cmd.UserID())
	} else {
		feed.MarkRead(cmd.NotificationID(), cmd.UserID())
	}

	h.publisher.PublishRefresh(ctx, ports.TopicNotifications)

	return nil
}
