package queries

import (
	"context"
	"database/sql"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWorkerSummaryQueryHandler retrieves a worker's standing with the tier
// label joined in from the rate schedule.
type GetWorkerSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerSummaryQueryHandler creates a handler for worker-summary queries.
func NewGetWorkerSummaryQueryHandler(db *gorm.DB) GetWorkerSummaryQueryHandler {
	return GetWorkerSummaryQueryHandler{db: db}
}

// Handle executes the query.
// Returns ObjectNotFoundError when the worker does not exist.
func (h GetWorkerSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerSummaryQuery,
) (GetWorkerSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkerSummaryQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			w.approval,
			w.level,
			t.label,
			w.lifetime_completed,
			w.completed_in_tier,
			w.balance_cents
		FROM workers w
		JOIN tiers t ON t.level = w.level
		WHERE w.worker_id = ?
	`, query.WorkerID().Bytes()).Row()

	var resp GetWorkerSummaryQueryResponse
	var balanceCents int64

	err := row.Scan(
		&resp.Approval,
		&resp.Level,
		&resp.TierLabel,
		&resp.LifetimeCompleted,
		&resp.CompletedInTier,
		&balanceCents,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetWorkerSummaryQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"workerId", query.WorkerID().String(), err,
		)
	}
	if err != nil {
		return GetWorkerSummaryQueryResponse{}, err
	}

	balance, err := kernel.NewMoneyFromCents(balanceCents)
	if err != nil {
		return GetWorkerSummaryQueryResponse{}, err
	}

	resp.WorkerID = query.WorkerID()
	resp.Balance = balance
	return resp, nil
}
