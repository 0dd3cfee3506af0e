// Package ports defines repository and gateway interfaces for the production
// tracking domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"printflow/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for team members.
// Member records are managed by an external identity system; this service
// reads them to resolve actors, assignees and board columns.
type StaffRepository interface {
	// GetAll retrieves every team member.
	// Used to (re)build the in-memory workspace snapshot.
	GetAll(ctx context.Context) ([]staff.Member, error)

	// Get retrieves a team member by their external identifier.
	// Returns errs.ObjectNotFoundError when no member has the id.
	Get(ctx context.Context, id string) (staff.Member, error)

	// GetByEmail retrieves a team member by login e-mail.
	// Matching is case-insensitive. Returns errs.ObjectNotFoundError when
	// no member has the e-mail.
	GetByEmail(ctx context.Context, email string) (staff.Member, error)
}
