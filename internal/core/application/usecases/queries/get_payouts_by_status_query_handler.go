package queries

import (
	"context"
	"time"

	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPayoutsByStatusQueryHandler retrieves payout requests by status.
type GetPayoutsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPayoutsByStatusQueryHandler creates a handler for payout-queue queries.
func NewGetPayoutsByStatusQueryHandler(db *gorm.DB) GetPayoutsByStatusQueryHandler {
	return GetPayoutsByStatusQueryHandler{db: db}
}

// Handle executes the query. Requests are sorted oldest first so the queue
// is worked in submission order.
func (h GetPayoutsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPayoutsByStatusQuery,
) ([]GetPayoutsByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payouts := make([]GetPayoutsByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			worker_id,
			amount_cents,
			method,
			target,
			created_at
		FROM payout_requests
		WHERE status = ?
		ORDER BY created_at ASC
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var payoutResp GetPayoutsByStatusQueryResponse
		var id, workerID uuid.UUID
		var amountCents int64
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&workerID,
			&amountCents,
			&payoutResp.Method,
			&payoutResp.Target,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		payoutID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		payoutResp.ID = payoutID

		requesterID, idErr := kernel.UUIDFromBytes(workerID[:])
		if idErr != nil {
			return nil, idErr
		}
		payoutResp.WorkerID = requesterID

		amount, amountErr := kernel.NewMoneyFromCents(amountCents)
		if amountErr != nil {
			return nil, amountErr
		}
		payoutResp.Amount = amount
		payoutResp.CreatedAt = createdAt

		payouts = append(payouts, payoutResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payouts, nil
}
