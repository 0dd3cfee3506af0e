// Package audit provides the global audit log for destructive actions.
// Unlike an order's history trail, audit entries outlive the records they
// describe: deleting an order keeps its deletion entry.
package audit

import (
	"time"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when validating an Entry that was not
// created through NewEntry.
var ErrEntryIsNotConstructed = errs.NewValueIsRequiredError("Entry must be created via NewEntry")

// ActionType classifies what an audit entry records.
type ActionType string

const (
	// ActionDeleteOrder records the deletion of a work order.
	ActionDeleteOrder ActionType = "DELETE_ORDER"

	// ActionDeleteUser records the deletion of a team member.
	ActionDeleteUser ActionType = "DELETE_USER"
)

// Validate checks if the ActionType is one of the known actions.
func (a ActionType) Validate() error {
	switch a {
	case ActionDeleteOrder, ActionDeleteUser:
		return nil
	}
	return errs.NewValueIsInvalidError("actionType")
}

// Entry is one line of the global audit log.
type Entry struct {
	id         string
	userID     string
	userName   string
	timestamp  time.Time
	actionType ActionType
	targetInfo string

	guard guard.ConstructorGuard
}

// NewEntry creates an audit log entry.
//
// targetInfo is a human-readable description of what was acted on,
// e.g. "O.R 1042 - ACME Ltda".
func NewEntry(id, userID, userName string, timestamp time.Time, actionType ActionType, targetInfo string) (Entry, error) {
	if id == "" {
		return Entry{}, errs.NewValueIsRequiredError("id")
	}
	if userID == "" {
		return Entry{}, errs.NewValueIsRequiredError("userID")
	}
	if userName == "" {
		return Entry{}, errs.NewValueIsRequiredError("userName")
	}
	if err := actionType.Validate(); err != nil {
		return Entry{}, err
	}
	if targetInfo == "" {
		return Entry{}, errs.NewValueIsRequiredError("targetInfo")
	}
	return Entry{
		id:         id,
		userID:     userID,
		userName:   userName,
		timestamp:  timestamp,
		actionType: actionType,
		targetInfo: targetInfo,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ID returns the entry identifier.
func (e Entry) ID() string {
	return e.id
}

// UserID returns the identifier of the acting user.
func (e Entry) UserID() string {
	return e.userID
}

// UserName returns the display name of the acting user.
func (e Entry) UserName() string {
	return e.userName
}

// Timestamp returns when the action happened.
func (e Entry) Timestamp() time.Time {
	return e.timestamp
}

// ActionType returns what kind of action the entry records.
func (e Entry) ActionType() ActionType {
	return e.actionType
}

// TargetInfo returns the human-readable description of the target.
func (e Entry) TargetInfo() string {
	return e.targetInfo
}

// Validate ensures the Entry was created via NewEntry.
func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}
