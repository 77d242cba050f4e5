package jobs

import (
	"context"
	"log/slog"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultReconciliationSchedule runs the balance rebuild hourly.
const DefaultReconciliationSchedule = "0 0 * * * *"

// BalanceReconciliationJob periodically rebuilds every approved worker's
// balance from the order and payout ledgers. It exists to repair drift:
// day-to-day balances move through atomic credits and reservations, and the
// reconciliation pass re-derives them from first principles.
type BalanceReconciliationJob struct {
	handler  commands.RecalculateBalanceCommandHandler
	workers  ports.WorkerRepository
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBalanceReconciliationJob creates the reconciliation job. An empty
// schedule falls back to DefaultReconciliationSchedule.
func NewBalanceReconciliationJob(
	handler commands.RecalculateBalanceCommandHandler,
	workers ports.WorkerRepository,
	schedule string,
	logger *slog.Logger,
) *BalanceReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconciliationSchedule
	}

	return &BalanceReconciliationJob{
		handler:  handler,
		workers:  workers,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "balance_reconciliation_job"),
	}
}

// Start schedules the reconciliation runs.
func (j *BalanceReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Balance reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *BalanceReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Balance reconciliation job stopped")
}

// run reconciles every approved worker. One worker failing must not starve
// the rest, so failures are logged and the loop moves on.
func (j *BalanceReconciliationJob) run() {
	ctx := context.Background()

	approved, err := j.workers.ListApproved(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list workers for reconciliation", "error", err)
		return
	}

	var failed int
	for _, progress := range approved {
		cmd, err := commands.NewRecalculateBalanceCommand(progress.WorkerID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build recalculation command",
				"worker_id", progress.WorkerID().String(), "error", err)
			failed++
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Balance reconciliation failed for worker",
				"worker_id", progress.WorkerID().String(), "error", err)
			failed++
		}
	}

	if failed > 0 {
		j.logger.WarnContext(ctx, "Balance reconciliation run finished with failures",
			"workers", len(approved), "failed", failed)
	}
}
