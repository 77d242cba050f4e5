package jobs

import (
	"context"
	"errors"
	"log/slog"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/payout"
	"workorders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultPayoutSchedule drains the approved payout queue every 30 seconds.
const DefaultPayoutSchedule = "*/30 * * * * *"

// PayoutProcessingJob periodically picks up approved payout requests and
// runs them through the payment processor, oldest first. Claiming is
// atomic inside the handler, so overlapping runs never double-pay.
type PayoutProcessingJob struct {
	handler  commands.ProcessPayoutCommandHandler
	payouts  ports.PayoutRepository
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPayoutProcessingJob creates the payout queue job. An empty schedule
// falls back to DefaultPayoutSchedule.
func NewPayoutProcessingJob(
	handler commands.ProcessPayoutCommandHandler,
	payouts ports.PayoutRepository,
	schedule string,
	logger *slog.Logger,
) *PayoutProcessingJob {
	if schedule == "" {
		schedule = DefaultPayoutSchedule
	}

	return &PayoutProcessingJob{
		handler:  handler,
		payouts:  payouts,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "payout_processing_job"),
	}
}

// Start schedules the payout queue runs.
func (j *PayoutProcessingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Payout processing job started", "schedule", j.schedule)
	return nil
}

// Stop stops the payout processing job.
func (j *PayoutProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payout processing job stopped")
}

func (j *PayoutProcessingJob) run() {
	ctx := context.Background()

	approved, err := j.payouts.ListByStatus(ctx, payout.Approved)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list approved payouts", "error", err)
		return
	}

	for _, request := range approved {
		cmd, err := commands.NewProcessPayoutCommand(request.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build payout command",
				"payout_id", request.ID().String(), "error", err)
			continue
		}

		err = j.handler.Handle(ctx, cmd)
		switch {
		case err == nil:
		case errors.Is(err, commands.ErrPayoutNotProcessable):
			// Another run claimed it between the listing and the handle.
		default:
			var processorErr *ports.ProcessorError
			if errors.As(err, &processorErr) {
				// Processor failures are retryable; the request is back in
				// approved and the next run picks it up again.
				j.logger.WarnContext(ctx, "Payment processor rejected payout, will retry",
					"payout_id", request.ID().String(), "error", err)
				continue
			}
			j.logger.ErrorContext(ctx, "Payout processing failed",
				"payout_id", request.ID().String(), "error", err)
		}
	}
}
