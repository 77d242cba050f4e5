// Package tierrepo persists the piece-rate schedule. Tiers are reference
// data: seeded once at startup and read-only afterwards.
package tierrepo

import (
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/worker"
)

// TierDTO represents one row of the piece-rate schedule.
type TierDTO struct {
	Level              int `gorm:"primaryKey"`
	Threshold          int
	StandardRateCents  int64
	TechnicalRateCents int64
	Label              string
}

// TableName specifies the database table name for tier entities.
func (TierDTO) TableName() string {
	return "tiers"
}

// fromDomain converts a schedule entry to its database representation.
func fromDomain(tier worker.EarningsTier) TierDTO {
	return TierDTO{
		Level:              tier.Level(),
		Threshold:          tier.Threshold(),
		StandardRateCents:  tier.StandardRate().Cents(),
		TechnicalRateCents: tier.TechnicalRate().Cents(),
		Label:              tier.Label(),
	}
}

// toDomain converts a database DTO back to a schedule entry.
func toDomain(dto TierDTO) (worker.EarningsTier, error) {
	standard, err := kernel.NewMoneyFromCents(dto.StandardRateCents)
	if err != nil {
		return worker.EarningsTier{}, err
	}

	technical, err := kernel.NewMoneyFromCents(dto.TechnicalRateCents)
	if err != nil {
		return worker.EarningsTier{}, err
	}

	return worker.NewEarningsTier(dto.Level, dto.Threshold, standard, technical, dto.Label)
}
