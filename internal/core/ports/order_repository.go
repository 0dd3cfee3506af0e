package ports

import (
	"context"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// including their per-step statuses, assignments and history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with statuses, assignments and history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, active and archived.
	// Used to (re)build the in-memory workspace snapshot.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order aggregate permanently.
	// Deletion is audited by the caller; the repository only removes the row.
	Delete(ctx context.Context, id kernel.UUID) error
}
