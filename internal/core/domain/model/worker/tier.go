package worker

import (
	"errors"
	"fmt"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

// ErrTierIsNotConstructed is returned when an EarningsTier was not created
// through NewEarningsTier.
var ErrTierIsNotConstructed = errors.New("EarningsTier must be created via NewEarningsTier")

// EarningsTier is one entry of the piece-rate schedule: a compensation
// bracket unlocked by completed-order count. Tiers are immutable reference
// data, seeded once and read-only at runtime.
type EarningsTier struct {
	level int

	// threshold is the number of orders a worker must complete while on the
	// previous tier to unlock this one.
	threshold int

	standardRate  kernel.Money
	technicalRate kernel.Money
	label         string

	guard guard.ConstructorGuard
}

// NewEarningsTier creates a schedule entry.
// Level must be positive; the threshold must be non-negative; both per-page
// rates must be positive.
func NewEarningsTier(
	level, threshold int,
	standardRate, technicalRate kernel.Money,
	label string,
) (EarningsTier, error) {
	if level <= 0 {
		return EarningsTier{}, errs.NewValueIsInvalidErrorWithCause("tier level is invalid",
			fmt.Errorf("%d is not greater than 0", level))
	}
	if threshold < 0 {
		return EarningsTier{}, errs.NewValueIsInvalidErrorWithCause("tier threshold is invalid",
			fmt.Errorf("%d is negative", threshold))
	}
	if !standardRate.IsPositive() || !technicalRate.IsPositive() {
		return EarningsTier{}, errs.NewValueIsInvalidError("tier rates must be greater than 0")
	}
	if label == "" {
		return EarningsTier{}, errs.NewValueIsRequiredError("tier label")
	}

	return EarningsTier{
		level:         level,
		threshold:     threshold,
		standardRate:  standardRate,
		technicalRate: technicalRate,
		label:         label,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the tier was constructed through NewEarningsTier.
func (t EarningsTier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

// Level returns the tier's ordinal level.
func (t EarningsTier) Level() int {
	return t.level
}

// Threshold returns the in-tier completed-order count required to unlock
// this tier from the previous one.
func (t EarningsTier) Threshold() int {
	return t.threshold
}

// StandardRate returns the per-page rate for standard work.
func (t EarningsTier) StandardRate() kernel.Money {
	return t.standardRate
}

// TechnicalRate returns the per-page rate for technical work.
func (t EarningsTier) TechnicalRate() kernel.Money {
	return t.technicalRate
}

// Label returns the tier's human-readable name.
func (t EarningsTier) Label() string {
	return t.label
}

// RateFor returns the per-page rate applicable to the given work class.
func (t EarningsTier) RateFor(technical bool) kernel.Money {
	if technical {
		return t.technicalRate
	}
	return t.standardRate
}

// Schedule is the ordered piece-rate schedule, lowest tier first.
type Schedule []EarningsTier

// ByLevel returns the tier with the given level.
func (s Schedule) ByLevel(level int) (EarningsTier, error) {
	for _, tier := range s {
		if tier.level == level {
			return tier, nil
		}
	}
	return EarningsTier{}, errs.NewObjectNotFoundError("tier level", level)
}

// NextAfter returns the tier following the given level, if one exists.
func (s Schedule) NextAfter(level int) (EarningsTier, bool) {
	for _, tier := range s {
		if tier.level == level+1 {
			return tier, true
		}
	}
	return EarningsTier{}, false
}

// Validate checks that the schedule starts at level 1 and levels are
// consecutive, so tier progression can never skip or stall on a gap.
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return errs.NewValueIsRequiredError("schedule must contain at least one tier")
	}
	for i, tier := range s {
		if err := tier.Validate(); err != nil {
			return err
		}
		if tier.level != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("schedule is invalid",
				fmt.Errorf("tier at position %d has level %d, want %d", i, tier.level, i+1))
		}
	}
	return nil
}

// DefaultSchedule returns the seeded piece-rate schedule. Thresholds are
// in-tier order counts: a worker needs 10 completed orders on novice to
// reach specialist, 20 more for expert, 45 more for top.
func DefaultSchedule() (Schedule, error) {
	type row struct {
		level     int
		threshold int
		standard  int64
		technical int64
		label     string
	}

	rows := []row{
		{1, 0, 20000, 23000, "Novice"},
		{2, 10, 21000, 24000, "Specialist"},
		{3, 20, 22000, 25500, "Expert"},
		{4, 45, 24000, 27500, "Top Rated"},
	}

	schedule := make(Schedule, 0, len(rows))
	for _, r := range rows {
		standard, err := kernel.NewMoneyFromCents(r.standard)
		if err != nil {
			return nil, err
		}
		technical, err := kernel.NewMoneyFromCents(r.technical)
		if err != nil {
			return nil, err
		}
		tier, err := NewEarningsTier(r.level, r.threshold, standard, technical, r.label)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, tier)
	}

	return schedule, nil
}
