// Package queries contains read-side operations in the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing
// the aggregates and unit of work used on the write side.
package queries

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves all orders open for bidding.
// This is the board workers browse when looking for work.
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to retrieve biddable orders.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse represents one biddable order on the board.
type GetOpenOrdersQueryResponse struct {
	ID        kernel.UUID
	ClientID  kernel.UUID
	Amount    kernel.Money
	Pages     int
	Slides    int
	WorkType  string
	CreatedAt time.Time
}
