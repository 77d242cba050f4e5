package queries

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/payout"
	"workorders/internal/pkg/guard"
)

var ErrGetPayoutsByStatusQueryIsNotConstructed = errors.New(
	"GetPayoutsByStatusQuery must be created via NewGetPayoutsByStatusQuery constructor",
)

// GetPayoutsByStatusQuery retrieves payout requests in a given status,
// primarily the pending review queue for finance staff.
type GetPayoutsByStatusQuery struct { //nolint:recvcheck //using for validation
	status payout.Status

	guard guard.ConstructorGuard
}

// NewGetPayoutsByStatusQuery creates a query to retrieve payout requests by status.
func NewGetPayoutsByStatusQuery(status payout.Status) (GetPayoutsByStatusQuery, error) {
	query := GetPayoutsByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetPayoutsByStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPayoutsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPayoutsByStatusQueryIsNotConstructed)
}

// Status returns the payout status being filtered on.
func (q GetPayoutsByStatusQuery) Status() payout.Status {
	return q.status
}

func (q *GetPayoutsByStatusQuery) setStatus(status payout.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

// GetPayoutsByStatusQueryResponse represents one payout request in the queue.
type GetPayoutsByStatusQueryResponse struct {
	ID        kernel.UUID
	WorkerID  kernel.UUID
	Amount    kernel.Money
	Method    string
	Target    string
	CreatedAt time.Time
}
