package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetOrderBidsQueryIsNotConstructed = errors.New(
	"GetOrderBidsQuery must be created via NewGetOrderBidsQuery constructor",
)

// GetOrderBidsQuery retrieves all bids placed on one order, for the client
// comparing offers.
type GetOrderBidsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderBidsQuery creates a query to retrieve an order's bids.
func NewGetOrderBidsQuery(orderID kernel.UUID) (GetOrderBidsQuery, error) {
	query := GetOrderBidsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderBidsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBidsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBidsQueryIsNotConstructed)
}

// OrderID returns the order whose bids are requested.
func (q GetOrderBidsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderBidsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderBidsQueryResponse represents one bid on the order.
type GetOrderBidsQueryResponse struct {
	ID       kernel.UUID
	WorkerID kernel.UUID
	Amount   kernel.Money
	Message  string
	Status   string
}
