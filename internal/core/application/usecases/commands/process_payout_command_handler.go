package commands

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/payout"
	"workorders/internal/core/ports"
)

// ErrPayoutNotProcessable is returned when the payout request is not in
// approved status, including when a concurrent run already claimed it.
var ErrPayoutNotProcessable = errors.New("payout is not ready for processing")

// ProcessPayoutCommandHandler executes approved payouts against the
// external payment processor.
//
// Processing is two-phase. The request is first claimed by an atomic
// approved-to-processing status flip in its own transaction; the flip
// failing means another run holds the request and this one backs off with
// ErrPayoutNotProcessable. Only then is the processor called, outside any
// transaction. Success records the processor's payment reference; failure
// returns the request to approved so it can be retried, with the
// reservation untouched either way.
type ProcessPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
	processor  ports.PaymentProcessor
	publisher  ports.EventPublisher
}

// NewProcessPayoutCommandHandler creates a handler for payout processing.
func NewProcessPayoutCommandHandler(
	uowFactory PayoutUoWFactory,
	processor ports.PaymentProcessor,
	publisher ports.EventPublisher,
) ProcessPayoutCommandHandler {
	return ProcessPayoutCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
		publisher:  publisher,
	}
}

// Handle processes the command.
// Returns ErrPayoutNotProcessable when the request is not claimable, or the
// processor's error after reverting the claim.
func (h ProcessPayoutCommandHandler) Handle(ctx context.Context, command ProcessPayoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	request, err := h.claim(ctx, command.PayoutID())
	if err != nil {
		return err
	}

	processorRef, err := h.processor.ProcessPayout(ctx, request)
	if err != nil {
		if revertErr := h.revert(ctx, command.PayoutID()); revertErr != nil {
			return errors.Join(err, revertErr)
		}
		return err
	}

	if err = h.complete(ctx, command.PayoutID(), processorRef); err != nil {
		return err
	}

	h.publisher.Publish(ctx, request.WorkerID(), ports.Event{
		Name: ports.EventPayoutCompleted,
		Data: map[string]any{
			"payout_id":     request.ID().String(),
			"amount":        request.Amount().String(),
			"processor_ref": processorRef,
		},
	})

	return nil
}

// claim atomically moves the request from approved to processing and
// returns its state as of the claim.
func (h ProcessPayoutCommandHandler) claim(
	ctx context.Context,
	payoutID kernel.UUID,
) (*payout.PayoutRequest, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	claimed, err := uow.PayoutRepository().UpdateStatusIf(
		ctx, payoutID, payout.Approved, payout.Processing,
	)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrPayoutNotProcessable
	}

	request, err := uow.PayoutRepository().Get(ctx, payoutID)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}

func (h ProcessPayoutCommandHandler) complete(
	ctx context.Context,
	payoutID kernel.UUID,
	processorRef string,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	request, err := uow.PayoutRepository().Get(ctx, payoutID)
	if err != nil {
		return err
	}

	if err = request.Complete(processorRef); err != nil {
		return err
	}

	if err = uow.PayoutRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ProcessPayoutCommandHandler) revert(ctx context.Context, payoutID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.PayoutRepository().UpdateStatusIf(
		ctx, payoutID, payout.Processing, payout.Approved,
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
