package auditlogrepo

import (
	"context"

	"printflow/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditLogRepository implements AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GORM audit log repository.
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Add appends an audit entry.
func (r *GormAuditLogRepository) Add(ctx context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll retrieves every audit entry, newest first.
func (r *GormAuditLogRepository) GetAll(ctx context.Context) ([]audit.Entry, error) {
	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}
