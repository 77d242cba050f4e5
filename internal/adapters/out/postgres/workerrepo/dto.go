// Package workerrepo provides data transfer objects and mapping functions
// for worker progress persistence. The balance column is special: it is only
// ever mutated through conditional atomic updates, never through the regular
// Update path, so concurrent credits and reservations cannot lose writes.
package workerrepo

import (
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO represents the database structure for persisting worker progress.
type WorkerDTO struct {
	WorkerID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Approval          string    `gorm:"type:varchar(32);index"`
	Specialist        bool
	Level             int
	LifetimeCompleted int
	CompletedInTier   int
	BalanceCents      int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for worker progress entities.
func (WorkerDTO) TableName() string {
	return "workers"
}

// fromDomain converts a worker progress aggregate to its database representation.
func fromDomain(aggregate *worker.Progress) WorkerDTO {
	return WorkerDTO{
		WorkerID:          aggregate.WorkerID().Bytes(),
		Approval:          aggregate.Approval().String(),
		Specialist:        aggregate.IsSpecialist(),
		Level:             aggregate.Level(),
		LifetimeCompleted: aggregate.LifetimeCompleted(),
		CompletedInTier:   aggregate.CompletedInTier(),
		BalanceCents:      aggregate.Balance().Cents(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back to a worker progress aggregate.
func toDomain(dto WorkerDTO) (*worker.Progress, error) {
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	approval, err := worker.ApprovalStatusFromString(dto.Approval)
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoneyFromCents(dto.BalanceCents)
	if err != nil {
		return nil, err
	}

	return worker.RestoreProgress(
		workerID,
		approval,
		dto.Specialist,
		dto.Level,
		dto.LifetimeCompleted,
		dto.CompletedInTier,
		balance,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
