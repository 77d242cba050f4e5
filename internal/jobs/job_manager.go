package jobs

import (
	"fmt"
	"log/slog"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconciliationJob *BalanceReconciliationJob
	payoutJob         *PayoutProcessingJob
}

// Schedules carries the cron expressions for each job. Empty fields fall
// back to the job defaults.
type Schedules struct {
	Reconciliation string
	PayoutQueue    string
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers and the repositories the jobs enumerate work from.
func NewJobManager(
	recalculateHandler commands.RecalculateBalanceCommandHandler,
	workers ports.WorkerRepository,
	processPayoutHandler commands.ProcessPayoutCommandHandler,
	payouts ports.PayoutRepository,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reconciliationJob: NewBalanceReconciliationJob(
			recalculateHandler, workers, schedules.Reconciliation, logger),
		payoutJob: NewPayoutProcessingJob(
			processPayoutHandler, payouts, schedules.PayoutQueue, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start balance reconciliation job: %w", err)
	}

	if err := jm.payoutJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.reconciliationJob.Stop()
		return fmt.Errorf("failed to start payout processing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.payoutJob.Stop()
	jm.reconciliationJob.Stop()
}
