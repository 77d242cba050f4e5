package queries

import (
	"context"

	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderBidsQueryHandler retrieves the bids placed on an order.
type GetOrderBidsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBidsQueryHandler creates a handler for order-bid queries.
func NewGetOrderBidsQueryHandler(db *gorm.DB) GetOrderBidsQueryHandler {
	return GetOrderBidsQueryHandler{db: db}
}

// Handle executes the query. Bids are sorted newest first.
func (h GetOrderBidsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBidsQuery,
) ([]GetOrderBidsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bids := make([]GetOrderBidsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			worker_id,
			amount_cents,
			message,
			status
		FROM bids
		WHERE order_id = ?
		ORDER BY created_at DESC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bidResp GetOrderBidsQueryResponse
		var id, workerID uuid.UUID
		var amountCents int64

		err = rows.Scan(
			&id,
			&workerID,
			&amountCents,
			&bidResp.Message,
			&bidResp.Status,
		)
		if err != nil {
			return nil, err
		}

		bidID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		bidResp.ID = bidID

		bidderID, idErr := kernel.UUIDFromBytes(workerID[:])
		if idErr != nil {
			return nil, idErr
		}
		bidResp.WorkerID = bidderID

		amount, amountErr := kernel.NewMoneyFromCents(amountCents)
		if amountErr != nil {
			return nil, amountErr
		}
		bidResp.Amount = amount

		bids = append(bids, bidResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
