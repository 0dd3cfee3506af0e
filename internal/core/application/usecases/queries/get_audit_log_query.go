package queries

import (
	"errors"
	"time"

	"printflow/internal/pkg/guard"
)

var ErrGetAuditLogQueryIsNotConstructed = errors.New(
	"GetAuditLogQuery must be created via NewGetAuditLogQuery constructor",
)

// GetAuditLogQuery retrieves the global audit log of destructive actions.
//
// Example:
//
//	query := NewGetAuditLogQuery()
//	handler := NewGetAuditLogQueryHandler(db)
//
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get audit log: %w", err)
//	}
type GetAuditLogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAuditLogQuery creates a parameterless audit log query.
func NewGetAuditLogQuery() GetAuditLogQuery {
	return GetAuditLogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAuditLogQueryIsNotConstructed if validation fails.
func (q GetAuditLogQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditLogQueryIsNotConstructed)
}

// GetAuditLogQueryResponse represents one audit log line.
type GetAuditLogQueryResponse struct {
	ID         string
	UserID     string
	UserName   string
	Timestamp  time.Time
	ActionType string
	TargetInfo string
}
