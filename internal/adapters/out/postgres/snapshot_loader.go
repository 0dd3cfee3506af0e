package postgres

import (
	"context"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/staff"
	"printflow/internal/core/ports"
)

// SnapshotLoader reads the full order set and roster in one go. The result
// feeds workspace.Refresh at startup and on every poll tick, which is how
// writes made by other replicas become visible here.
type SnapshotLoader struct {
	orders ports.OrderRepository
	staff  ports.StaffRepository
}

// NewSnapshotLoader creates a loader over the given repositories.
func NewSnapshotLoader(orders ports.OrderRepository, staff ports.StaffRepository) *SnapshotLoader {
	return &SnapshotLoader{orders: orders, staff: staff}
}

// Load retrieves every order and team member.
func (l *SnapshotLoader) Load(ctx context.Context) ([]*order.Order, []staff.Member, error) {
	orders, err := l.orders.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	members, err := l.staff.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	return orders, members, nil
}
