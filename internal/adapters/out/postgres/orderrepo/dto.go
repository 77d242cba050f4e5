// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their wire names so rows stay readable and the
// read-side queries can filter on them directly.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID  `gorm:"type:uuid;index"`
	WorkerID        *uuid.UUID `gorm:"type:uuid;index"`
	ManagerID       *uuid.UUID `gorm:"type:uuid"`
	Status          string     `gorm:"type:varchar(32);index"`
	AmountCents     int64
	Pages           int
	Slides          int
	WorkType        string `gorm:"type:varchar(32)"`
	DeliverableRef  string
	EarningsCounted bool `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var workerID *uuid.UUID
	if id := aggregate.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	var managerID *uuid.UUID
	if id := aggregate.Manager(); id != nil {
		raw := id.Bytes()
		managerID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ClientID:        aggregate.ClientID().Bytes(),
		WorkerID:        workerID,
		ManagerID:       managerID,
		Status:          aggregate.Status().String(),
		AmountCents:     aggregate.Amount().Cents(),
		Pages:           aggregate.Pages(),
		Slides:          aggregate.Slides(),
		WorkType:        aggregate.WorkType().String(),
		DeliverableRef:  aggregate.DeliverableRef(),
		EarningsCounted: aggregate.EarningsCounted(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, re-checking the status/worker consistency invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerID = &wID
	}

	var managerID *kernel.UUID
	if dto.ManagerID != nil {
		mID, managerErr := kernel.UUIDFromBytes((*dto.ManagerID)[:])
		if managerErr != nil {
			return nil, managerErr
		}
		managerID = &mID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	workType, err := order.WorkTypeFromString(dto.WorkType)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromCents(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		clientID,
		workerID,
		managerID,
		status,
		amount,
		dto.Pages,
		dto.Slides,
		workType,
		dto.DeliverableRef,
		dto.EarningsCounted,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
