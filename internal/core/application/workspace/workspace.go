// Package workspace holds the shared in-memory working set of the service:
// the current order snapshot, the team roster and the notification feed.
// Command handlers mutate it after persisting, query handlers read from it,
// and the store subscription refreshes it when another writer changes the
// underlying data.
package workspace

import (
	"sort"
	"strings"
	"sync"

	"printflow/internal/core/domain/model/notification"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/staff"
)

// Workspace is the concurrency-safe working set. Orders cross its boundary
// as deep copies in both directions: Order, Orders and Put all clone, so a
// handler mutating the copy it fetched never shares state with a projection
// or scan reading concurrently. Refresh is the exception and takes ownership
// of the slice it is given. The zero value is not usable; create it via New.
type Workspace struct {
	mu      sync.RWMutex
	orders  map[string]*order.Order
	members []staff.Member

	feed *notification.Feed
}

// New creates an empty workspace with a fresh notification feed.
func New() *Workspace {
	return &Workspace{
		orders: make(map[string]*order.Order),
		feed:   notification.NewFeed(),
	}
}

// Refresh replaces the order and member snapshot wholesale. Last write wins;
// the notification feed is not touched, it lives only in memory.
func (w *Workspace) Refresh(orders []*order.Order, members []staff.Member) {
	next := make(map[string]*order.Order, len(orders))
	for _, o := range orders {
		next[o.ID().String()] = o
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.orders = next
	w.members = append([]staff.Member(nil), members...)
}

// Orders returns a copy of the current order set, newest first.
func (w *Workspace) Orders() []*order.Order {
	w.mu.RLock()
	defer w.mu.RUnlock()

	orders := make([]*order.Order, 0, len(w.orders))
	for _, o := range w.orders {
		orders = append(orders, o.Clone())
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt().Equal(orders[j].CreatedAt()) {
			return orders[i].CreatedAt().After(orders[j].CreatedAt())
		}
		return orders[i].ID().String() < orders[j].ID().String()
	})
	return orders
}

// Order returns a copy of the order with the given id, if present.
func (w *Workspace) Order(id string) (*order.Order, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	o, ok := w.orders[id]
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

// Put inserts or replaces one order in the snapshot. The workspace keeps its
// own copy; later mutation of the argument does not reach the snapshot.
func (w *Workspace) Put(o *order.Order) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.orders[o.ID().String()] = o.Clone()
}

// Remove drops one order from the snapshot.
func (w *Workspace) Remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.orders, id)
}

// Members returns the current team roster.
func (w *Workspace) Members() []staff.Member {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]staff.Member(nil), w.members...)
}

// Member returns the team member with the given id, if present.
func (w *Workspace) Member(id string) (staff.Member, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, m := range w.members {
		if m.ID() == id {
			return m, true
		}
	}
	return staff.Member{}, false
}

// MemberByEmail returns the team member with the given login e-mail.
// Matching is case-insensitive.
func (w *Workspace) MemberByEmail(email string) (staff.Member, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, m := range w.members {
		if strings.EqualFold(m.Email(), email) {
			return m, true
		}
	}
	return staff.Member{}, false
}

// Feed returns the shared notification feed.
func (w *Workspace) Feed() *notification.Feed {
	return w.feed
}
