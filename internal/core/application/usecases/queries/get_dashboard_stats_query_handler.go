package queries

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/ports"
)

// GetDashboardStatsQueryHandler counts the active order set for the
// dashboard cards.
type GetDashboardStatsQueryHandler struct {
	ws    *workspace.Workspace
	clock ports.Clock
}

// NewGetDashboardStatsQueryHandler creates a handler for stats queries.
func NewGetDashboardStatsQueryHandler(ws *workspace.Workspace, clock ports.Clock) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{ws: ws, clock: clock}
}

// Handle executes the stats query.
func (h GetDashboardStatsQueryHandler) Handle(
	_ context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	today := h.clock.Today()

	var stats GetDashboardStatsQueryResponse
	for _, o := range h.ws.Orders() {
		if o.IsArchived() {
			continue
		}
		stats.Total++
		if o.InProduction() {
			stats.EmAndamento++
		}
		if o.IsLate(today) {
			stats.Atrasadas++
		}
	}

	return stats, nil
}
