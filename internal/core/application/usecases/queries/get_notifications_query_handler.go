package queries

import (
	"context"

	"printflow/internal/core/application/workspace"
)

// GetNotificationsQueryHandler reads one user's feed from the workspace.
type GetNotificationsQueryHandler struct {
	ws *workspace.Workspace
}

// NewGetNotificationsQueryHandler creates a handler for feed queries.
func NewGetNotificationsQueryHandler(ws *workspace.Workspace) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{ws: ws}
}

// Handle executes the feed query.
func (h GetNotificationsQueryHandler) Handle(
	_ context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	feed := h.ws.Feed()
	return GetNotificationsQueryResponse{
		Notifications: feed.VisibleTo(query.UserID()),
		UnreadCount:   feed.UnreadCount(query.UserID()),
	}, nil
}
