package queries

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/services"
	"printflow/internal/pkg/errs"
)

// GetBoardQueryHandler projects the in-memory order snapshot into the
// requested board layout.
type GetBoardQueryHandler struct {
	ws        *workspace.Workspace
	projector services.BoardProjector
}

// NewGetBoardQueryHandler creates a handler for board queries.
func NewGetBoardQueryHandler(ws *workspace.Workspace, projector services.BoardProjector) GetBoardQueryHandler {
	return GetBoardQueryHandler{ws: ws, projector: projector}
}

// Handle executes the board query for the acting user.
func (h GetBoardQueryHandler) Handle(_ context.Context, query GetBoardQuery) ([]services.Column, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor, ok := h.ws.Member(query.ActorID())
	if !ok {
		return nil, errs.NewObjectNotFoundError("actorID", query.ActorID())
	}

	columns := h.projector.Project(services.ProjectionParams{
		Orders:         h.ws.Orders(),
		Members:        h.ws.Members(),
		Actor:          actor,
		ViewMode:       query.ViewMode(),
		SectorFilter:   query.SectorFilter(),
		SearchTerm:     query.SearchTerm(),
		PriorityFilter: query.PriorityFilter(),
	})

	return columns, nil
}
