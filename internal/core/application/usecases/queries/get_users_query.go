package queries

import (
	"errors"

	"printflow/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves the team roster for the assignment pickers and the
// team board.
type GetUsersQuery struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a query for the full roster.
func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUsersQueryIsNotConstructed if validation fails.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}
