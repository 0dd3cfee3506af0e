package queries

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/ports"
)

// GetOrdersQueryHandler filters the in-memory order snapshot for the table
// views: active vs archived, free-text search and the dashboard narrowing.
type GetOrdersQueryHandler struct {
	ws    *workspace.Workspace
	clock ports.Clock
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(ws *workspace.Workspace, clock ports.Clock) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{ws: ws, clock: clock}
}

// Handle executes the order list query. Results come newest first.
func (h GetOrdersQueryHandler) Handle(_ context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := h.clock.Today()
	wantArchived := query.Tab() == TabArquivadas

	var result []*order.Order
	for _, o := range h.ws.Orders() {
		if o.IsArchived() != wantArchived {
			continue
		}
		if !o.MatchesSearch(query.SearchTerm()) {
			continue
		}
		switch query.DashboardFilter() {
		case FilterProducao:
			if !o.InProduction() {
				continue
			}
		case FilterAtrasadas:
			if !o.IsLate(today) {
				continue
			}
		}
		result = append(result, o)
	}

	return result, nil
}
