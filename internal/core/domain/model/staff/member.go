package staff

import (
	"errors"
	"fmt"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// ErrMemberIsNotConstructed is returned when validating a Member that was not
// created through NewMember.
var ErrMemberIsNotConstructed = errs.NewValueIsRequiredError("Member must be created via NewMember")

// Role defines what a team member may do in the system.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleOperador is a regular production operator.
	RoleOperador

	// RoleAdmin manages users and sees every sector.
	RoleAdmin
)

// getRoleNames returns a map of Role values to their display names.
func getRoleNames() map[Role]string {
	return map[Role]string{
		RoleOperador: "Operador",
		RoleAdmin:    "Admin",
	}
}

// RoleFromName parses a Role from its display name ("Admin" or "Operador").
func RoleFromName(name string) (Role, error) {
	for role, n := range getRoleNames() {
		if n == name {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", name))
}

// String returns the display name of the role.
func (r Role) String() string {
	if str, ok := getRoleNames()[r]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getRoleNames()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Member is a team member who can be assigned production work.
// Authentication lives outside this service; members are referenced by their
// external identifier.
//
// A member belongs to one department: either one of the five production
// sectors (identified by the step key) or the cross-cutting "Geral" sector.
// Leaders may assign tasks to other members of their sector.
type Member struct {
	id           string
	nome         string
	email        string
	cargo        string
	role         Role
	departamento string
	isLeader     bool

	guard guard.ConstructorGuard
}

// NewMember creates a team member.
//
// Parameters:
//   - id: external identifier (required)
//   - nome: display name (required)
//   - email: login e-mail (required)
//   - role: Admin or Operador
//   - departamento: a production step key or order.SectorGeral
//   - cargo: optional job title
//   - isLeader: whether the member may assign tasks in their sector
func NewMember(id, nome, email string, role Role, departamento, cargo string, isLeader bool) (Member, error) {
	m := Member{
		cargo:    cargo,
		isLeader: isLeader,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setNome(nome),
		m.setEmail(email),
		m.setRole(role),
		m.setDepartamento(departamento),
	); err != nil {
		return Member{}, err
	}

	return m, nil
}

// ID returns the member's external identifier.
func (m Member) ID() string {
	return m.id
}

// Nome returns the member's display name.
func (m Member) Nome() string {
	return m.nome
}

// Email returns the member's login e-mail.
func (m Member) Email() string {
	return m.email
}

// Cargo returns the member's job title, possibly empty.
func (m Member) Cargo() string {
	return m.cargo
}

// Role returns the member's role.
func (m Member) Role() Role {
	return m.role
}

// Departamento returns the member's department: a step key or
// order.SectorGeral.
func (m Member) Departamento() string {
	return m.departamento
}

// IsLeader reports whether the member may assign tasks in their sector.
func (m Member) IsLeader() bool {
	return m.isLeader
}

// IsAdmin reports whether the member has the Admin role.
func (m Member) IsAdmin() bool {
	return m.role == RoleAdmin
}

// WorksInSector reports whether the member belongs to the given production
// sector. Admins and Geral members belong to every sector.
func (m Member) WorksInSector(stepKey string) bool {
	return m.departamento == stepKey || m.departamento == order.SectorGeral || m.IsAdmin()
}

// Validate ensures the Member was created via NewMember.
func (m Member) Validate() error {
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// setID validates and sets the identifier.
// This is a private method used only during construction.
func (m *Member) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	m.id = id
	return nil
}

// setNome validates and sets the display name.
// This is a private method used only during construction.
func (m *Member) setNome(nome string) error {
	if nome == "" {
		return errs.NewValueIsRequiredError("nome")
	}
	m.nome = nome
	return nil
}

// setEmail validates and sets the login e-mail.
// This is a private method used only during construction.
func (m *Member) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	m.email = email
	return nil
}

// setRole validates and sets the role.
// This is a private method used only during construction.
func (m *Member) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	m.role = role
	return nil
}

// setDepartamento validates and sets the department.
// This is a private method used only during construction.
func (m *Member) setDepartamento(departamento string) error {
	if departamento == order.SectorGeral {
		m.departamento = departamento
		return nil
	}
	if _, err := order.StepFromKey(departamento); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("departamento", fmt.Errorf("%q is not a sector", departamento))
	}
	m.departamento = departamento
	return nil
}
