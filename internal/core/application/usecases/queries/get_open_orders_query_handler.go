package queries

import (
	"context"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves orders open for bidding from the
// database. Only orders in pending status appear on the board.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open-order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first so fresh
// orders surface at the top of the board.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			amount_cents,
			pages,
			slides,
			work_type,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at DESC
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOpenOrdersQueryResponse
		var id, clientID uuid.UUID
		var amountCents int64
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&clientID,
			&amountCents,
			&orderResp.Pages,
			&orderResp.Slides,
			&orderResp.WorkType,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ClientID = ownerID

		amount, amountErr := kernel.NewMoneyFromCents(amountCents)
		if amountErr != nil {
			return nil, amountErr
		}
		orderResp.Amount = amount
		orderResp.CreatedAt = createdAt

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
