// Package queries contains read-side operations of the CQRS architecture.
// Board, order-list and stats queries read the in-memory workspace snapshot;
// the audit log query reads the database directly.
package queries

import (
	"errors"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrGetBoardQueryIsNotConstructed = errors.New(
	"GetBoardQuery must be created via NewGetBoardQuery constructor",
)

// GetBoardQuery retrieves the kanban board columns for one user and view.
//
// Example:
//
//	query, err := NewGetBoardQuery("u1", services.ViewTeam, "impressao", "", order.PriorityUnknown)
//	if err != nil {
//	    return fmt.Errorf("invalid board request: %w", err)
//	}
//
//	columns, err := handler.Handle(ctx, query)
type GetBoardQuery struct { //nolint:recvcheck //using for validation
	actorID        string
	viewMode       services.ViewMode
	sectorFilter   string
	searchTerm     string
	priorityFilter order.Priority

	guard guard.ConstructorGuard
}

// NewGetBoardQuery creates a query for one board view.
// sectorFilter may be services.SectorAll or empty; priorityFilter may be
// order.PriorityUnknown to skip priority filtering.
func NewGetBoardQuery(
	actorID string,
	viewMode services.ViewMode,
	sectorFilter, searchTerm string,
	priorityFilter order.Priority,
) (GetBoardQuery, error) {
	if actorID == "" {
		return GetBoardQuery{}, errs.NewValueIsRequiredError("actorID")
	}

	return GetBoardQuery{
		actorID:        actorID,
		viewMode:       viewMode,
		sectorFilter:   sectorFilter,
		searchTerm:     searchTerm,
		priorityFilter: priorityFilter,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBoardQueryIsNotConstructed if validation fails.
func (q GetBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardQueryIsNotConstructed)
}

// ActorID returns the user looking at the board.
func (q GetBoardQuery) ActorID() string {
	return q.actorID
}

// ViewMode returns the requested board layout.
func (q GetBoardQuery) ViewMode() services.ViewMode {
	return q.viewMode
}

// SectorFilter returns the sector scoping for team view.
func (q GetBoardQuery) SectorFilter() string {
	return q.sectorFilter
}

// SearchTerm returns the free-text filter.
func (q GetBoardQuery) SearchTerm() string {
	return q.searchTerm
}

// PriorityFilter returns the priority filter.
func (q GetBoardQuery) PriorityFilter() order.Priority {
	return q.priorityFilter
}
