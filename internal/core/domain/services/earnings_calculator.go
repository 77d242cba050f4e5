package services

import (
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/worker"
	"workorders/internal/pkg/errs"
)

// slideRateCents is the flat per-slide rate for presentation material,
// identical across all tiers.
const slideRateCents = 100_00

// EarningsCalculator is a domain service computing the amount credited to a
// worker for a completed order.
//
// Business rules:
//   - Pages are paid at the worker's current tier rate
//   - Technical work types use the tier's technical rate, others the standard rate
//   - Slides are paid at a flat per-slide rate regardless of tier
//   - Page and slide components are summed
//
// Example usage:
//
//	calculator := NewEarningsCalculator()
//	amount, err := calculator.ComputePayout(10, 0, order.Essay, tier)
type EarningsCalculator struct{}

// NewEarningsCalculator creates a new EarningsCalculator instance.
func NewEarningsCalculator() EarningsCalculator {
	return EarningsCalculator{}
}

// ComputePayout calculates the worker payout for an order's volume at the
// given tier.
//
// Parameters:
//   - pages: Number of written pages (non-negative)
//   - slides: Number of presentation slides (non-negative)
//   - workType: The order's work type, selecting the standard or technical rate
//   - tier: The worker's current earnings tier
//
// Returns:
//   - kernel.Money: pages x tier rate + slides x flat slide rate
//   - error: Validation errors for negative volumes or an unconstructed tier
func (c EarningsCalculator) ComputePayout(
	pages, slides int,
	workType order.WorkType,
	tier worker.EarningsTier,
) (kernel.Money, error) {
	if err := tier.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := workType.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if pages < 0 {
		return kernel.Money{}, errs.NewValueIsInvalidError("pages must not be negative")
	}
	if slides < 0 {
		return kernel.Money{}, errs.NewValueIsInvalidError("slides must not be negative")
	}

	pageTotal, err := tier.RateFor(workType.IsTechnical()).MulInt(pages)
	if err != nil {
		return kernel.Money{}, err
	}

	slideRate, err := kernel.NewMoneyFromCents(slideRateCents)
	if err != nil {
		return kernel.Money{}, err
	}
	slideTotal, err := slideRate.MulInt(slides)
	if err != nil {
		return kernel.Money{}, err
	}

	return pageTotal.Add(slideTotal), nil
}
