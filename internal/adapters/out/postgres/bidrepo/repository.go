package bidrepo

import (
	"context"
	"errors"
	"time"

	"workorders/internal/core/domain/model/bid"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBidRepository implements BidRepository using GORM.
type GormBidRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBidRepository creates a new GORM bid repository.
func NewGormBidRepository(db *gorm.DB, tracker aggregateTracker) *GormBidRepository {
	return &GormBidRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bid to the database.
func (r *GormBidRepository) Add(ctx context.Context, aggregate *bid.Bid) error {
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

// Update saves an existing bid to the database.
func (r *GormBidRepository) Update(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BidDTO{}).
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

// Get retrieves a bid by ID.
func (r *GormBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BidDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bid", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForOrder retrieves all bids placed on an order, newest first.
func (r *GormBidRepository) GetForOrder(ctx context.Context, orderID kernel.UUID) ([]*bid.Bid, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BidDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	bids := make([]*bid.Bid, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}

	return bids, nil
}

// HasPendingForWorker reports whether the worker already has a pending bid
// on the order.
func (r *GormBidRepository) HasPendingForWorker(
	ctx context.Context,
	orderID, workerID kernel.UUID,
) (bool, error) {
	if err := errors.Join(orderID.Validate(), workerID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&BidDTO{}).
		Where("order_id = ? AND worker_id = ? AND status = ?",
			orderID.Bytes(), workerID.Bytes(), bid.Pending.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// RejectOtherPending marks every pending bid on the order as rejected except
// the accepted one, as a single bulk update inside the acceptance transaction.
func (r *GormBidRepository) RejectOtherPending(
	ctx context.Context,
	orderID, acceptedBidID kernel.UUID,
) error {
	if err := errors.Join(orderID.Validate(), acceptedBidID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&BidDTO{}).
		Where("order_id = ? AND id <> ? AND status = ?",
			orderID.Bytes(), acceptedBidID.Bytes(), bid.Pending.String()).
		Updates(map[string]any{
			"status":     bid.Rejected.String(),
			"updated_at": time.Now().UTC(),
		}).Error
}
