package worker

import (
	"errors"
	"fmt"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

// ErrProgressIsNotConstructed is returned when a Progress instance was not
// created through NewProgress or RestoreProgress.
var ErrProgressIsNotConstructed = errors.New("Progress must be created via NewProgress or RestoreProgress")

// Progress is the per-worker aggregate tracking tier state and the
// available balance. It is created when a worker is approved and never
// deleted.
//
// The balance field is a snapshot: every mutation of the stored balance
// (earnings credit, payout reservation, payout refund) goes through
// conditional atomic updates in the repository, never through
// read-modify-write on this aggregate.
type Progress struct {
	workerID kernel.UUID
	approval ApprovalStatus

	// specialist marks workers cleared for technical work types.
	specialist bool

	// level is the current tier; monotonic, never decreases.
	level int

	// lifetimeCompleted counts all completed and payment-confirmed orders.
	lifetimeCompleted int

	// completedInTier counts orders completed since entering the current tier.
	completedInTier int

	balance kernel.Money

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewProgress creates tier-progress tracking for a newly approved worker:
// approved standing, tier level 1, zero counters, zero balance.
func NewProgress(workerID kernel.UUID) (*Progress, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Progress{
		workerID:  workerID,
		approval:  Approved,
		level:     1,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreProgress reconstructs worker progress from persistence.
func RestoreProgress(
	workerID kernel.UUID,
	approval ApprovalStatus,
	specialist bool,
	level, lifetimeCompleted, completedInTier int,
	balance kernel.Money,
	createdAt, updatedAt time.Time,
) (*Progress, error) {
	if err := errors.Join(workerID.Validate(), approval.Validate()); err != nil {
		return nil, err
	}
	if level <= 0 || lifetimeCompleted < 0 || completedInTier < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("worker progress is invalid",
			fmt.Errorf("level=%d lifetime=%d inTier=%d", level, lifetimeCompleted, completedInTier))
	}

	return &Progress{
		workerID:          workerID,
		approval:          approval,
		specialist:        specialist,
		level:             level,
		lifetimeCompleted: lifetimeCompleted,
		completedInTier:   completedInTier,
		balance:           balance,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Progress was constructed through a constructor.
func (p *Progress) Validate() error {
	if p == nil {
		return ErrProgressIsNotConstructed
	}
	return p.guard.Validate(ErrProgressIsNotConstructed)
}

// WorkerID returns the worker this progress belongs to.
func (p *Progress) WorkerID() kernel.UUID {
	return p.workerID
}

// Approval returns the worker's platform standing.
func (p *Progress) Approval() ApprovalStatus {
	return p.approval
}

// IsSpecialist reports whether the worker is cleared for technical work.
func (p *Progress) IsSpecialist() bool {
	return p.specialist
}

// Level returns the worker's current tier level.
func (p *Progress) Level() int {
	return p.level
}

// LifetimeCompleted returns the lifetime completed-order count.
func (p *Progress) LifetimeCompleted() int {
	return p.lifetimeCompleted
}

// CompletedInTier returns orders completed since entering the current tier.
func (p *Progress) CompletedInTier() int {
	return p.completedInTier
}

// Balance returns the available-balance snapshot as of load time.
func (p *Progress) Balance() kernel.Money {
	return p.balance
}

// CreatedAt returns the creation timestamp.
func (p *Progress) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (p *Progress) UpdatedAt() time.Time {
	return p.updatedAt
}

// IsEligibleForPayout reports whether the worker may withdraw earnings.
func (p *Progress) IsEligibleForPayout() bool {
	return p.approval == Approved
}

// MarkSpecialist flags the worker as cleared for technical work.
func (p *Progress) MarkSpecialist() {
	p.specialist = true
	p.updatedAt = time.Now().UTC()
}

// Suspend deactivates the worker. Suspended workers keep their tier state
// but cannot request payouts until re-approved.
func (p *Progress) Suspend() {
	p.approval = Suspended
	p.updatedAt = time.Now().UTC()
}

// Approve reactivates a pending or suspended worker.
func (p *Progress) Approve() {
	p.approval = Approved
	p.updatedAt = time.Now().UTC()
}

// RecordCompletedOrder counts one completed, payment-confirmed order
// against the worker's progression.
//
// The lifetime and in-tier counters are incremented; when the in-tier count
// reaches the next tier's threshold the level advances and the counter is
// reset, carrying over any excess. Advancement is monotonic: the level
// never decreases, even if progress is later recomputed.
func (p *Progress) RecordCompletedOrder(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	p.lifetimeCompleted++
	p.completedInTier++

	for {
		next, ok := schedule.NextAfter(p.level)
		if !ok || p.completedInTier < next.Threshold() {
			break
		}
		p.completedInTier -= next.Threshold()
		p.level = next.Level()
	}

	p.updatedAt = time.Now().UTC()
	return nil
}
