package commands

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/payout"
)

// ErrInsufficientBalance is returned when a worker requests a payout larger
// than their available balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// RequestPayoutCommandHandler handles workers opening withdrawal requests.
//
// The requested amount is reserved immediately: the balance is decremented
// by a conditional atomic update in the same transaction that creates the
// pending request. Two concurrent requests can therefore never both reserve
// the same money; the one that finds insufficient funds fails with
// ErrInsufficientBalance and leaves no trace.
type RequestPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewRequestPayoutCommandHandler creates a handler for payout requests.
func NewRequestPayoutCommandHandler(uowFactory PayoutUoWFactory) RequestPayoutCommandHandler {
	return RequestPayoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payout request command.
// Returns ErrWorkerNotEligible for suspended workers and
// ErrInsufficientBalance when the reservation fails.
func (h RequestPayoutCommandHandler) Handle(ctx context.Context, command RequestPayoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	progress, err := uow.WorkerRepository().Get(ctx, command.WorkerID())
	if err != nil {
		return err
	}
	if !progress.IsEligibleForPayout() {
		return ErrWorkerNotEligible
	}

	reserved, err := uow.WorkerRepository().ReserveBalance(ctx, command.WorkerID(), command.Amount())
	if err != nil {
		return err
	}
	if !reserved {
		return ErrInsufficientBalance
	}

	request, err := payout.NewPayoutRequest(
		command.PayoutID(), command.WorkerID(), command.Amount(), command.Method(), command.Target(),
	)
	if err != nil {
		return err
	}

	if err = uow.PayoutRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
