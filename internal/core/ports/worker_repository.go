package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for worker progress
// aggregates and their balances.
//
// Balance mutations never go through Update: they are conditional atomic
// updates executed by the storage layer, so concurrent credits and
// reservations cannot lose writes or drive a balance negative.
type WorkerRepository interface {
	// Add persists progress tracking for a newly approved worker.
	Add(ctx context.Context, aggregate *worker.Progress) error

	// Update persists tier and approval changes. The stored balance is
	// deliberately not written here.
	Update(ctx context.Context, aggregate *worker.Progress) error

	// Get retrieves a worker's progress by worker identifier.
	Get(ctx context.Context, workerID kernel.UUID) (*worker.Progress, error)

	// ReserveBalance atomically subtracts amount from the worker's balance,
	// guarded by a sufficient-funds check in the same statement. Returns
	// false without modifying anything when funds are insufficient.
	ReserveBalance(ctx context.Context, workerID kernel.UUID, amount kernel.Money) (bool, error)

	// CreditBalance atomically adds amount to the worker's balance.
	CreditBalance(ctx context.Context, workerID kernel.UUID, amount kernel.Money) error

	// SetBalance overwrites the worker's balance with a recomputed value.
	// Only balance reconciliation uses this.
	SetBalance(ctx context.Context, workerID kernel.UUID, amount kernel.Money) error

	// ListApproved retrieves progress for every approved worker.
	ListApproved(ctx context.Context) ([]*worker.Progress, error)
}
