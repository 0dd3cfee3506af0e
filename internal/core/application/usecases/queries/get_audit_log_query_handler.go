package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAuditLogQueryHandler retrieves audit entries straight from the database.
// The audit log is append-only and not part of the workspace snapshot, so the
// read side queries it directly.
type GetAuditLogQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditLogQueryHandler creates a handler for audit log queries.
// Requires a GORM database connection for query execution.
func NewGetAuditLogQueryHandler(db *gorm.DB) GetAuditLogQueryHandler {
	return GetAuditLogQueryHandler{db: db}
}

// Handle executes the query. Entries come newest first.
func (h GetAuditLogQueryHandler) Handle(
	ctx context.Context,
	query GetAuditLogQuery,
) ([]GetAuditLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetAuditLogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			user_name,
			timestamp,
			action_type,
			target_info
		FROM audit_logs
		ORDER BY timestamp DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetAuditLogQueryResponse
		err = rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.UserName,
			&entry.Timestamp,
			&entry.ActionType,
			&entry.TargetInfo,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
