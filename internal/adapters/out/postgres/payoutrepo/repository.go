package payoutrepo

import (
	"context"
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/payout"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPayoutRepository implements PayoutRepository using GORM.
type GormPayoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPayoutRepository creates a new GORM payout repository.
func NewGormPayoutRepository(db *gorm.DB, tracker aggregateTracker) *GormPayoutRepository {
	return &GormPayoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payout request to the database.
func (r *GormPayoutRepository) Add(ctx context.Context, aggregate *payout.PayoutRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payout request to the database.
func (r *GormPayoutRepository) Update(ctx context.Context, aggregate *payout.PayoutRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PayoutDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payout request by ID.
func (r *GormPayoutRepository) Get(ctx context.Context, id kernel.UUID) (*payout.PayoutRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PayoutDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payout request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatusIf atomically moves the request from one status to another.
// The expected status sits in the WHERE clause, so of any number of
// concurrent claimants exactly one observes the move.
func (r *GormPayoutRepository) UpdateStatusIf(
	ctx context.Context,
	id kernel.UUID,
	from, to payout.Status,
) (bool, error) {
	if err := errors.Join(id.Validate(), from.Validate(), to.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&PayoutDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ListByStatus retrieves all payout requests in the given status, oldest
// first so the queue is worked in submission order.
func (r *GormPayoutRepository) ListByStatus(
	ctx context.Context,
	status payout.Status,
) ([]*payout.PayoutRequest, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []PayoutDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "status = ?", status.String()).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*payout.PayoutRequest, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, p)
	}

	return requests, nil
}

// SumNonRejectedForWorker returns the total amount across the worker's
// payout requests in any status except rejected. Rejected requests are
// excluded because their reservation was already credited back.
func (r *GormPayoutRepository) SumNonRejectedForWorker(
	ctx context.Context,
	workerID kernel.UUID,
) (kernel.Money, error) {
	if err := workerID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var totalCents int64
	err := r.db.WithContext(ctx).Model(&PayoutDTO{}).
		Select("COALESCE(SUM(amount_cents), 0)").
		Where("worker_id = ? AND status <> ?", workerID.Bytes(), payout.Rejected.String()).
		Scan(&totalCents).Error
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoneyFromCents(totalCents)
}
