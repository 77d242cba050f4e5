package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/payout"
)

// PayoutRepository defines the persistence contract for payout requests.
type PayoutRepository interface {
	// Add persists a new payout request.
	Add(ctx context.Context, aggregate *payout.PayoutRequest) error

	// Update persists changes to an existing payout request.
	Update(ctx context.Context, aggregate *payout.PayoutRequest) error

	// Get retrieves a payout request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payout.PayoutRequest, error)

	// UpdateStatusIf atomically moves the request from one status to another.
	// Returns false without modifying anything when the stored status differs
	// from the expected one, so two processor runs cannot both claim the same
	// request.
	UpdateStatusIf(ctx context.Context, id kernel.UUID, from, to payout.Status) (bool, error)

	// ListByStatus retrieves all payout requests in the given status, oldest first.
	ListByStatus(ctx context.Context, status payout.Status) ([]*payout.PayoutRequest, error)

	// SumNonRejectedForWorker returns the total amount across the worker's
	// payout requests in any status except rejected. Rejected requests are
	// excluded because their reservation was already credited back.
	SumNonRejectedForWorker(ctx context.Context, workerID kernel.UUID) (kernel.Money, error)
}
