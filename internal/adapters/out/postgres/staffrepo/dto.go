// Package staffrepo provides data transfer objects and mapping functions for team
// member persistence. Members are maintained by an external admin surface; this
// service only reads them, so the repository exposes lookups and no writes.
package staffrepo

import (
	"printflow/internal/core/domain/model/staff"
)

// MemberDTO represents the database structure for persisting team members.
type MemberDTO struct {
	ID           string `gorm:"type:varchar(64);primaryKey"`
	Nome         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Cargo        string `gorm:"type:varchar(255)"`
	Role         string `gorm:"type:varchar(32);not null"`
	Departamento string `gorm:"type:varchar(64);not null"`
	IsLeader     bool
}

// TableName specifies the database table name for member entities.
// Overrides GORM's default naming convention to use "users".
func (MemberDTO) TableName() string {
	return "users"
}

// fromDomain converts a member domain entity to its database representation.
func fromDomain(member staff.Member) MemberDTO {
	return MemberDTO{
		ID:           member.ID(),
		Nome:         member.Nome(),
		Email:        member.Email(),
		Cargo:        member.Cargo(),
		Role:         member.Role().String(),
		Departamento: member.Departamento(),
		IsLeader:     member.IsLeader(),
	}
}

// toDomain converts a database DTO to a member domain entity.
func toDomain(dto MemberDTO) (staff.Member, error) {
	role, err := staff.RoleFromName(dto.Role)
	if err != nil {
		return staff.Member{}, err
	}

	return staff.NewMember(dto.ID, dto.Nome, dto.Email, role, dto.Departamento, dto.Cargo, dto.IsLeader)
}
