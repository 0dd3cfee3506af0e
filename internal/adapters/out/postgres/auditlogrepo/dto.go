// Package auditlogrepo provides data transfer objects and mapping functions for
// the global audit log. Entries are append-only rows; nothing ever updates or
// deletes them.
package auditlogrepo

import (
	"time"

	"printflow/internal/core/domain/model/audit"
)

// EntryDTO represents the database structure for persisting audit entries.
// The columns match what the read-side audit query scans.
type EntryDTO struct {
	ID         string    `gorm:"type:varchar(64);primaryKey"`
	UserID     string    `gorm:"column:user_id;type:varchar(64);not null"`
	UserName   string    `gorm:"column:user_name;type:varchar(255);not null"`
	Timestamp  time.Time `gorm:"index"`
	ActionType string    `gorm:"column:action_type;type:varchar(32);not null"`
	TargetInfo string    `gorm:"column:target_info;type:varchar(512);not null"`
}

// TableName specifies the database table name for audit entries.
// Overrides GORM's default naming convention to use "audit_logs".
func (EntryDTO) TableName() string {
	return "audit_logs"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry audit.Entry) EntryDTO {
	return EntryDTO{
		ID:         entry.ID(),
		UserID:     entry.UserID(),
		UserName:   entry.UserName(),
		Timestamp:  entry.Timestamp(),
		ActionType: string(entry.ActionType()),
		TargetInfo: entry.TargetInfo(),
	}
}

// toDomain converts a database DTO to an audit entry.
func toDomain(dto EntryDTO) (audit.Entry, error) {
	return audit.NewEntry(
		dto.ID, dto.UserID, dto.UserName, dto.Timestamp, audit.ActionType(dto.ActionType), dto.TargetInfo,
	)
}
