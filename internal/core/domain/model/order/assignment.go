package order

import (
	"errors"
	"time"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when validating an Assignment
// that was not created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errs.NewValueIsRequiredError("Assignment must be created via NewAssignment or RestoreAssignment")

// Assignment records which team member is responsible for one production step
// of an order. At most one assignment exists per step.
//
// Besides the responsibility itself, the assignment tracks the lifecycle of
// the work: startedAt is stamped the first time the step enters Em Produção
// and completedAt the first time it enters Concluído. Both stamps are
// idempotent so that correcting a status back and forth does not rewrite
// when the work actually happened.
//
// Assignment is an immutable value object; mutating methods return a copy.
type Assignment struct {
	userID      string
	userName    string
	assignedBy  string
	assignedAt  time.Time
	note        string
	startedAt   *time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates a fresh assignment with no work timestamps.
//
// Parameters:
//   - userID: identifier of the assignee (required)
//   - userName: display name of the assignee (required)
//   - assignedBy: display name of the user who made the assignment (required)
//   - assignedAt: when the assignment was made
//   - note: optional instructions for the assignee
func NewAssignment(userID, userName, assignedBy string, assignedAt time.Time, note string) (Assignment, error) {
	a := Assignment{
		assignedAt: assignedAt,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setUserID(userID),
		a.setUserName(userName),
		a.setAssignedBy(assignedBy),
	); err != nil {
		return Assignment{}, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistent storage,
// including its work timestamps.
func RestoreAssignment(
	userID, userName, assignedBy string,
	assignedAt time.Time,
	note string,
	startedAt *time.Time,
	completedAt *time.Time,
) (Assignment, error) {
	a, err := NewAssignment(userID, userName, assignedBy, assignedAt, note)
	if err != nil {
		return Assignment{}, err
	}
	a.startedAt = startedAt
	a.completedAt = completedAt
	return a, nil
}

// UserID returns the identifier of the assignee.
func (a Assignment) UserID() string {
	return a.userID
}

// UserName returns the display name of the assignee.
func (a Assignment) UserName() string {
	return a.userName
}

// AssignedBy returns the display name of the user who made the assignment.
func (a Assignment) AssignedBy() string {
	return a.assignedBy
}

// AssignedAt returns when the assignment was made.
func (a Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// Note returns the optional instructions attached to the assignment.
func (a Assignment) Note() string {
	return a.note
}

// StartedAt returns when work on the step started, or nil if it has not.
func (a Assignment) StartedAt() *time.Time {
	return a.startedAt
}

// CompletedAt returns when work on the step finished, or nil if it has not.
func (a Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// IsStarted reports whether work on the step has started.
func (a Assignment) IsStarted() bool {
	return a.startedAt != nil
}

// MarkStarted stamps startedAt and returns the updated assignment.
// The stamp is idempotent: once set, later calls return the assignment
// unchanged.
func (a Assignment) MarkStarted(at time.Time) Assignment {
	if a.startedAt != nil {
		return a
	}
	a.startedAt = &at
	return a
}

// MarkCompleted stamps completedAt and returns the updated assignment.
// The stamp is idempotent: once set, later calls return the assignment
// unchanged.
func (a Assignment) MarkCompleted(at time.Time) Assignment {
	if a.completedAt != nil {
		return a
	}
	a.completedAt = &at
	return a
}

// CarryTimestampsFrom copies the work timestamps of a previous assignment
// onto this one. Used when the same user is re-assigned so that an edited
// note does not erase when the work happened.
func (a Assignment) CarryTimestampsFrom(previous Assignment) Assignment {
	a.startedAt = previous.startedAt
	a.completedAt = previous.completedAt
	return a
}

// Validate ensures the Assignment was created via its constructors.
func (a Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// setUserID validates and sets the assignee identifier.
// This is a private method used only during construction.
func (a *Assignment) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}
	a.userID = userID
	return nil
}

// setUserName validates and sets the assignee display name.
// This is a private method used only during construction.
func (a *Assignment) setUserName(userName string) error {
	if userName == "" {
		return errs.NewValueIsRequiredError("userName")
	}
	a.userName = userName
	return nil
}

// setAssignedBy validates and sets the assigner display name.
// This is a private method used only during construction.
func (a *Assignment) setAssignedBy(assignedBy string) error {
	if assignedBy == "" {
		return errs.NewValueIsRequiredError("assignedBy")
	}
	a.assignedBy = assignedBy
	return nil
}
