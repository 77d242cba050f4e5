package workerrepo

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/worker"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkerRepository implements WorkerRepository using GORM.
type GormWorkerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkerRepository creates a new GORM worker repository.
func NewGormWorkerRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkerRepository {
	return &GormWorkerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves progress tracking for a newly approved worker.
func (r *GormWorkerRepository) Add(ctx context.Context, aggregate *worker.Progress) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.WorkerID(), aggregate)
	return nil
}

// Update saves tier and approval changes. The balance column is deliberately
// excluded: it only moves through the conditional atomic updates below.
func (r *GormWorkerRepository) Update(ctx context.Context, aggregate *worker.Progress) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkerDTO{}).
		Where("worker_id = ?", dto.WorkerID).
		Select("*").Omit("worker_id", "balance_cents", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.WorkerID(), aggregate)
	return nil
}

// Get retrieves a worker's progress by worker identifier.
func (r *GormWorkerRepository) Get(ctx context.Context, workerID kernel.UUID) (*worker.Progress, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).First(&dto, "worker_id = ?", workerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", workerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ReserveBalance atomically subtracts amount from the worker's balance. The
// sufficient-funds check sits in the same statement as the decrement, so two
// concurrent reservations can never overdraw the balance between check and
// write. Returns false without modifying anything when funds are short.
func (r *GormWorkerRepository) ReserveBalance(
	ctx context.Context,
	workerID kernel.UUID,
	amount kernel.Money,
) (bool, error) {
	if err := workerID.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&WorkerDTO{}).
		Where("worker_id = ? AND balance_cents >= ?", workerID.Bytes(), amount.Cents()).
		Update("balance_cents", gorm.Expr("balance_cents - ?", amount.Cents()))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// CreditBalance atomically adds amount to the worker's balance.
func (r *GormWorkerRepository) CreditBalance(
	ctx context.Context,
	workerID kernel.UUID,
	amount kernel.Money,
) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&WorkerDTO{}).
		Where("worker_id = ?", workerID.Bytes()).
		Update("balance_cents", gorm.Expr("balance_cents + ?", amount.Cents()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("worker", workerID.String())
	}

	return nil
}

// SetBalance overwrites the worker's balance with a recomputed value.
// Only balance reconciliation uses this.
func (r *GormWorkerRepository) SetBalance(
	ctx context.Context,
	workerID kernel.UUID,
	amount kernel.Money,
) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&WorkerDTO{}).
		Where("worker_id = ?", workerID.Bytes()).
		Update("balance_cents", amount.Cents())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("worker", workerID.String())
	}

	return nil
}

// ListApproved retrieves progress for every approved worker.
func (r *GormWorkerRepository) ListApproved(ctx context.Context) ([]*worker.Progress, error) {
	var dtos []WorkerDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "approval = ?", worker.Approved.String()).Error
	if err != nil {
		return nil, err
	}

	workers := make([]*worker.Progress, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		workers = append(workers, p)
	}

	return workers, nil
}
