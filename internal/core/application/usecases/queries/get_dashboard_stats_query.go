package queries

import (
	"errors"

	"printflow/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the dashboard counters over the active
// order set.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a parameterless stats query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardStatsQueryIsNotConstructed if validation fails.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse holds the dashboard counters.
// All three count only active (non-archived) orders.
type GetDashboardStatsQueryResponse struct {
	// Total is the number of active orders.
	Total int

	// EmAndamento is the number of active orders with at least one step
	// currently in Em Produção.
	EmAndamento int

	// Atrasadas is the number of active orders past their delivery date.
	Atrasadas int
}
