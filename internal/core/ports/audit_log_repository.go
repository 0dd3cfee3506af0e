package ports

import (
	"context"

	"printflow/internal/core/domain/model/audit"
)

// AuditLogRepository defines the persistence contract for the global audit
// log. Entries are append-only and survive the records they describe.
type AuditLogRepository interface {
	// Add appends an audit entry.
	Add(ctx context.Context, entry audit.Entry) error

	// GetAll retrieves every audit entry, newest first.
	GetAll(ctx context.Context) ([]audit.Entry, error)
}
