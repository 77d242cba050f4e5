// Package ports defines repository and gateway interfaces for the work-order
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"workorders/internal/core/domain/model/bid"
	"workorders/internal/core/domain/model/kernel"
)

// BidRepository defines the persistence contract for bids.
type BidRepository interface {
	// Add persists a new bid to storage.
	Add(ctx context.Context, aggregate *bid.Bid) error

	// Update persists changes to an existing bid.
	Update(ctx context.Context, aggregate *bid.Bid) error

	// Get retrieves a bid by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error)

	// GetForOrder retrieves all bids placed on an order, newest first.
	GetForOrder(ctx context.Context, orderID kernel.UUID) ([]*bid.Bid, error)

	// HasPendingForWorker reports whether the worker already has a pending
	// bid on the order. Enforces the one-pending-bid-per-worker-per-order rule.
	HasPendingForWorker(ctx context.Context, orderID, workerID kernel.UUID) (bool, error)

	// RejectOtherPending marks every pending bid on the order as rejected,
	// except the accepted one. Runs as a single bulk update inside the
	// acceptance transaction.
	RejectOtherPending(ctx context.Context, orderID, acceptedBidID kernel.UUID) error
}
