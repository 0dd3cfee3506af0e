package notification

import (
	"sort"
	"sync"
)

// DefaultRetention is how many system notifications the feed keeps.
// The oldest entries are dropped first.
const DefaultRetention = 50

// Feed is the in-memory notification state of the shop. It holds two lists:
// system notifications (assignments, due-date alerts, order events) and
// manual alerts written by operators. Manual alerts always sort before
// system entries of the same severity, matching how operators expect their
// own messages to surface.
//
// The feed deduplicates system notifications two ways:
//   - by ID, which makes the periodic due-date scan idempotent (scan alerts
//     carry deterministic IDs per order and day)
//   - by (title, message, target), which absorbs repeated direct emissions
//
// Feed is safe for concurrent use.
type Feed struct {
	mu        sync.RWMutex
	manual    []*Notification
	system    []*Notification
	retention int
}

// NewFeed creates an empty feed with the default retention.
func NewFeed() *Feed {
	return &Feed{retention: DefaultRetention}
}

// Publish adds a system notification to the feed. Duplicates (same ID, or
// same title, message and target as an existing entry) are dropped silently.
// Returns true when the notification was accepted.
func (f *Feed) Publish(n *Notification) bool {
	if err := n.Validate(); err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.system {
		if existing.id == n.id {
			return false
		}
		if existing.title == n.title && existing.message == n.message && existing.targetUserID == n.targetUserID {
			return false
		}
	}

	f.system = append([]*Notification{n}, f.system...)
	if len(f.system) > f.retention {
		f.system = f.system[:f.retention]
	}
	return true
}

// PublishAlert adds a scan-derived alert, deduplicating by ID only. Scan
// alerts repeat their text day after day; the deterministic per-day ID is
// what distinguishes them.
func (f *Feed) PublishAlert(n *Notification) bool {
	if err := n.Validate(); err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.system {
		if existing.id == n.id {
			return false
		}
	}

	f.system = append([]*Notification{n}, f.system...)
	if len(f.system) > f.retention {
		f.system = f.system[:f.retention]
	}
	return true
}

// PublishManual adds an operator-written alert. Manual alerts are not
// deduplicated; sending the same text twice is a deliberate act.
func (f *Feed) PublishManual(n *Notification) bool {
	if err := n.Validate(); err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.manual = append([]*Notification{n}, f.manual...)
	return true
}

// RetractAssignment removes the pending assignment notifications of a member
// for one order. Called when the member starts the work or loses the
// assignment.
func (f *Feed) RetractAssignment(orderID, userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.system[:0]
	for _, n := range f.system {
		m := n.metadata
		if m != nil && m.Kind == MetadataAssignment && m.OrderID == orderID && n.targetUserID == userID {
			continue
		}
		kept = append(kept, n)
	}
	f.system = kept
}

// VisibleTo returns the notifications the member should see, most urgent
// first. Entries of equal severity keep their insertion order (newest first
// within each list, manual alerts before system ones). The returned slice
// holds copies; mutating them does not affect the feed.
func (f *Feed) VisibleTo(userID string) []*Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var visible []*Notification
	for _, n := range f.manual {
		if n.IsVisibleTo(userID) {
			visible = append(visible, n.clone())
		}
	}
	for _, n := range f.system {
		if n.IsVisibleTo(userID) {
			visible = append(visible, n.clone())
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].severity > visible[j].severity
	})
	return visible
}

// UnreadCount returns how many notifications the member has not dismissed.
func (f *Feed) UnreadCount(userID string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := 0
	for _, n := range f.manual {
		if n.IsVisibleTo(userID) {
			count++
		}
	}
	for _, n := range f.system {
		if n.IsVisibleTo(userID) {
			count++
		}
	}
	return count
}

// MarkRead dismisses one notification for the member. Unknown IDs are
// ignored. Read state is per member: a broadcast stays visible to everyone
// else.
func (f *Feed) MarkRead(id, userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, n := range f.manual {
		if n.id == id {
			n.markReadBy(userID)
			return
		}
	}
	for _, n := range f.system {
		if n.id == id {
			n.markReadBy(userID)
			return
		}
	}
}

// MarkAllRead dismisses every notification addressed to the member.
func (f *Feed) MarkAllRead(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, n := range f.manual {
		if n.IsTargetedTo(userID) {
			n.markReadBy(userID)
		}
	}
	for _, n := range f.system {
		if n.IsTargetedTo(userID) {
			n.markReadBy(userID)
		}
	}
}

// Len returns how many notifications the feed currently holds, read or not.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.manual) + len(f.system)
}
