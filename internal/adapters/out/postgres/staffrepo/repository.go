package staffrepo

import (
	"context"
	"errors"

	"printflow/internal/core/domain/model/staff"
	"printflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Add saves a team member. Used when seeding the roster at startup.
func (r *GormStaffRepository) Add(ctx context.Context, member staff.Member) error {
	if err := member.Validate(); err != nil {
		return err
	}

	dto := fromDomain(member)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a team member by ID.
func (r *GormStaffRepository) Get(ctx context.Context, id string) (staff.Member, error) {
	if id == "" {
		return staff.Member{}, errs.NewValueIsRequiredError("id")
	}

	var dto MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return staff.Member{}, errs.NewObjectNotFoundError("member", id)
		}
		return staff.Member{}, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a team member by login e-mail, case-insensitively.
func (r *GormStaffRepository) GetByEmail(ctx context.Context, email string) (staff.Member, error) {
	if email == "" {
		return staff.Member{}, errs.NewValueIsRequiredError("email")
	}

	var dto MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "LOWER(email) = LOWER(?)", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return staff.Member{}, errs.NewObjectNotFoundError("member", email)
		}
		return staff.Member{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole roster ordered by display name.
func (r *GormStaffRepository) GetAll(ctx context.Context) ([]staff.Member, error) {
	var dtos []MemberDTO
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	members := make([]staff.Member, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}
