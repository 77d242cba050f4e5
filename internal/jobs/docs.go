// Package jobs provides scheduled background tasks for the settlement core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the platform.
//
// # Available Jobs
//
// 1. BalanceReconciliationJob - Periodically rebuilds every approved worker's
// balance from the order and payout ledgers
// 2. PayoutProcessingJob - Drains the approved payout queue through the
// payment processor, oldest first
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers and repositories
//	jobManager := jobs.NewJobManager(
//		recalculateHandler, workerRepo, processPayoutHandler, payoutRepo,
//		jobs.Schedules{}, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (with seconds). Reconciliation
// defaults to hourly; the payout queue defaults to every 30 seconds. Both
// are overridable through Schedules.
//
// # Error Handling
//
// - Reconciliation logs per-worker failures and keeps going
// - Payout processing treats an already-claimed request as a non-event and
// processor failures as retryable warnings
// - Failed job starts will stop any already running jobs
package jobs
