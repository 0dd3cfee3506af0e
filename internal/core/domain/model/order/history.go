package order

import (
	"time"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when validating a HistoryEntry
// that was not created through NewHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errs.NewValueIsRequiredError("HistoryEntry must be created via NewHistoryEntry")

// HistoryEntry is one line of an order's audit trail. Entries are appended
// when an order is created, when a step status changes and when a step
// assignment changes. The trail is append-only and kept oldest-first.
type HistoryEntry struct {
	userID    string
	userName  string
	timestamp time.Time
	status    Status
	sector    string

	guard guard.ConstructorGuard
}

// NewHistoryEntry creates an audit trail entry.
//
// Parameters:
//   - userID: identifier of the acting user (required)
//   - userName: display name of the acting user (required)
//   - timestamp: when the event happened
//   - status: the step status after the event
//   - sector: the step key the event belongs to, or SectorGeral
func NewHistoryEntry(userID, userName string, timestamp time.Time, status Status, sector string) (HistoryEntry, error) {
	if userID == "" {
		return HistoryEntry{}, errs.NewValueIsRequiredError("userID")
	}
	if userName == "" {
		return HistoryEntry{}, errs.NewValueIsRequiredError("userName")
	}
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if sector == "" {
		sector = SectorGeral
	}
	return HistoryEntry{
		userID:    userID,
		userName:  userName,
		timestamp: timestamp,
		status:    status,
		sector:    sector,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the identifier of the acting user.
func (h HistoryEntry) UserID() string {
	return h.userID
}

// UserName returns the display name of the acting user.
func (h HistoryEntry) UserName() string {
	return h.userName
}

// Timestamp returns when the event happened.
func (h HistoryEntry) Timestamp() time.Time {
	return h.timestamp
}

// Status returns the step status after the event.
func (h HistoryEntry) Status() Status {
	return h.status
}

// Sector returns the step key the event belongs to, or SectorGeral.
func (h HistoryEntry) Sector() string {
	return h.sector
}

// Validate ensures the HistoryEntry was created via NewHistoryEntry.
func (h HistoryEntry) Validate() error {
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}
