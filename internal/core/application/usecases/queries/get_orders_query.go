package queries

import (
	"errors"

	"printflow/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// Tab selects between the active board and the archive.
type Tab string

const (
	// TabOperacional lists active (non-archived) orders.
	TabOperacional Tab = "OPERACIONAL"

	// TabArquivadas lists archived orders.
	TabArquivadas Tab = "ARQUIVADAS"
)

// DashboardFilter narrows the active order list from the dashboard cards.
type DashboardFilter string

const (
	// FilterTodas applies no narrowing.
	FilterTodas DashboardFilter = "TODAS"

	// FilterProducao keeps orders with at least one step in Em Produção.
	FilterProducao DashboardFilter = "PRODUCAO"

	// FilterAtrasadas keeps active orders whose delivery date has passed.
	FilterAtrasadas DashboardFilter = "ATRASADAS"
)

// GetOrdersQuery retrieves the order list for the table views.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	tab             Tab
	searchTerm      string
	dashboardFilter DashboardFilter

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order list. An empty tab defaults
// to the active list, an empty filter to no narrowing.
func NewGetOrdersQuery(tab Tab, searchTerm string, dashboardFilter DashboardFilter) GetOrdersQuery {
	if tab == "" {
		tab = TabOperacional
	}
	if dashboardFilter == "" {
		dashboardFilter = FilterTodas
	}

	return GetOrdersQuery{
		tab:             tab,
		searchTerm:      searchTerm,
		dashboardFilter: dashboardFilter,
		guard:           guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Tab returns the requested list.
func (q GetOrdersQuery) Tab() Tab {
	return q.tab
}

// SearchTerm returns the free-text filter.
func (q GetOrdersQuery) SearchTerm() string {
	return q.searchTerm
}

// DashboardFilter returns the dashboard narrowing.
func (q GetOrdersQuery) DashboardFilter() DashboardFilter {
	return q.dashboardFilter
}
