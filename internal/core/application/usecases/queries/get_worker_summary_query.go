package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetWorkerSummaryQueryIsNotConstructed = errors.New(
	"GetWorkerSummaryQuery must be created via NewGetWorkerSummaryQuery constructor",
)

// GetWorkerSummaryQuery retrieves one worker's standing: tier, progression
// counters and available balance.
type GetWorkerSummaryQuery struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkerSummaryQuery creates a query to retrieve a worker summary.
func NewGetWorkerSummaryQuery(workerID kernel.UUID) (GetWorkerSummaryQuery, error) {
	query := GetWorkerSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setWorkerID(workerID); err != nil {
		return GetWorkerSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkerSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerSummaryQueryIsNotConstructed)
}

// WorkerID returns the worker whose summary is requested.
func (q GetWorkerSummaryQuery) WorkerID() kernel.UUID {
	return q.workerID
}

func (q *GetWorkerSummaryQuery) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	q.workerID = workerID
	return nil
}

// GetWorkerSummaryQueryResponse represents a worker's current standing,
// including the label of the tier they earn at.
type GetWorkerSummaryQueryResponse struct {
	WorkerID          kernel.UUID
	Approval          string
	Level             int
	TierLabel         string
	LifetimeCompleted int
	CompletedInTier   int
	Balance           kernel.Money
}
