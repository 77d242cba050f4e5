// Package bidrepo provides data transfer objects and mapping functions for
// bid persistence.
package bidrepo

import (
	"time"

	"workorders/internal/core/domain/model/bid"
	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BidDTO represents the database structure for persisting bids.
type BidDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	WorkerID    uuid.UUID `gorm:"type:uuid;index"`
	AmountCents int64
	Message     string
	Status      string `gorm:"type:varchar(32);index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for bid entities.
func (BidDTO) TableName() string {
	return "bids"
}

// fromDomain converts a bid entity to its database representation.
func fromDomain(aggregate *bid.Bid) BidDTO {
	return BidDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		WorkerID:    aggregate.WorkerID().Bytes(),
		AmountCents: aggregate.Amount().Cents(),
		Message:     aggregate.Message(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back to a bid entity using RestoreBid.
func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	status, err := bid.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromCents(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	return bid.RestoreBid(id, orderID, workerID, amount, dto.Message, status, dto.CreatedAt, dto.UpdatedAt)
}
