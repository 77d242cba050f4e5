package commands

import (
	"context"

	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/errs"
)

// settlementRepos is the repository surface earnings accrual needs. Both
// SettlementUoW and the full UoW satisfy it.
type settlementRepos interface {
	OrderRepoFactory
	WorkerRepoFactory
	TierRepoFactory
}

// accrueOrderEarnings credits a completed order to its worker exactly once:
// balance credit at the worker's current tier rate plus tier progression.
//
// Idempotence hangs on the order's earnings-counted flag, flipped with a
// conditional update inside the caller's transaction. When the flip reports
// the flag was already set the whole accrual is skipped, so retries and
// concurrent completion paths cannot double-credit.
func accrueOrderEarnings(ctx context.Context, repos settlementRepos, aggregate *order.Order) error {
	workerID := aggregate.Worker()
	if workerID == nil {
		// Unreachable for completed orders; RestoreOrder enforces the invariant.
		return errs.NewValueIsInvalidError("order has no assigned worker")
	}

	flipped, err := repos.OrderRepository().MarkEarningsCounted(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if !flipped {
		return nil
	}
	aggregate.MarkEarningsCounted()

	progress, err := repos.WorkerRepository().Get(ctx, *workerID)
	if err != nil {
		return err
	}

	schedule, err := repos.TierRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	tier, err := schedule.ByLevel(progress.Level())
	if err != nil {
		return err
	}

	amount, err := services.NewEarningsCalculator().ComputePayout(
		aggregate.Pages(), aggregate.Slides(), aggregate.WorkType(), tier,
	)
	if err != nil {
		return err
	}

	if err = repos.WorkerRepository().CreditBalance(ctx, *workerID, amount); err != nil {
		return err
	}

	if err = progress.RecordCompletedOrder(schedule); err != nil {
		return err
	}

	return repos.WorkerRepository().Update(ctx, progress)
}
