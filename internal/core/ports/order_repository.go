package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and row-locks it for the duration of
	// the surrounding transaction. Concurrent mutations of the same order
	// (competing bid acceptances, simultaneous transitions) serialize on
	// this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// MarkEarningsCounted atomically flips the order's earnings-counted flag
	// from false to true. Returns false when the flag was already set, so a
	// completed order is credited to the worker exactly once even under
	// concurrent completion requests.
	MarkEarningsCounted(ctx context.Context, id kernel.UUID) (bool, error)

	// ListCountedByWorker retrieves all orders whose earnings were credited
	// to the given worker. Used to recompute a worker's balance from the
	// ledger.
	ListCountedByWorker(ctx context.Context, workerID kernel.UUID) ([]*order.Order, error)
}
