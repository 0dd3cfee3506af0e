package queries

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/staff"
)

// GetUsersQueryHandler serves the roster from the in-memory workspace.
type GetUsersQueryHandler struct {
	ws *workspace.Workspace
}

// NewGetUsersQueryHandler creates a handler with the required dependencies.
func NewGetUsersQueryHandler(ws *workspace.Workspace) GetUsersQueryHandler {
	return GetUsersQueryHandler{ws: ws}
}

// Handle returns every team member.
func (h GetUsersQueryHandler) Handle(_ context.Context, query GetUsersQuery) ([]staff.Member, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.ws.Members(), nil
}
