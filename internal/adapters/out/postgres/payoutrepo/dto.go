// Package payoutrepo provides data transfer objects and mapping functions
// for payout request persistence.
package payoutrepo

import (
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/payout"

	"github.com/google/uuid"
)

// PayoutDTO represents the database structure for persisting payout requests.
type PayoutDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID     uuid.UUID `gorm:"type:uuid;index"`
	AmountCents  int64
	Method       string `gorm:"type:varchar(32)"`
	Target       string
	Status       string     `gorm:"type:varchar(32);index"`
	ReviewedBy   *uuid.UUID `gorm:"type:uuid"`
	RejectReason string
	ProcessorRef string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for payout request entities.
func (PayoutDTO) TableName() string {
	return "payout_requests"
}

// fromDomain converts a payout request aggregate to its database representation.
func fromDomain(aggregate *payout.PayoutRequest) PayoutDTO {
	var reviewedBy *uuid.UUID
	if id := aggregate.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	return PayoutDTO{
		ID:           aggregate.ID().Bytes(),
		WorkerID:     aggregate.WorkerID().Bytes(),
		AmountCents:  aggregate.Amount().Cents(),
		Method:       aggregate.Method().String(),
		Target:       aggregate.Target(),
		Status:       aggregate.Status().String(),
		ReviewedBy:   reviewedBy,
		RejectReason: aggregate.RejectReason(),
		ProcessorRef: aggregate.ProcessorRef(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back to a payout request aggregate.
func toDomain(dto PayoutDTO) (*payout.PayoutRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	var reviewedBy *kernel.UUID
	if dto.ReviewedBy != nil {
		rID, reviewErr := kernel.UUIDFromBytes((*dto.ReviewedBy)[:])
		if reviewErr != nil {
			return nil, reviewErr
		}
		reviewedBy = &rID
	}

	method, err := payout.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	status, err := payout.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromCents(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	return payout.RestorePayoutRequest(
		id,
		workerID,
		amount,
		method,
		dto.Target,
		status,
		reviewedBy,
		dto.RejectReason,
		dto.ProcessorRef,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
