package commands

import (
	"context"
	"fmt"

	"workorders/internal/core/ports"
)

// RejectPayoutCommandHandler handles administrators declining payout
// requests.
//
// Rejection releases the reservation: the exact requested amount is
// credited back to the worker's balance in the same transaction that marks
// the request rejected. The worker ends up with precisely the balance they
// had before requesting.
type RejectPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
	publisher  ports.EventPublisher
	mailer     ports.MailDispatcher
}

// NewRejectPayoutCommandHandler creates a handler for payout rejection.
func NewRejectPayoutCommandHandler(
	uowFactory PayoutUoWFactory,
	publisher ports.EventPublisher,
	mailer ports.MailDispatcher,
) RejectPayoutCommandHandler {
	return RejectPayoutCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		mailer:     mailer,
	}
}

// Handle processes the rejection command. Pending and approved requests can
// be rejected; processing and terminal ones cannot.
func (h RejectPayoutCommandHandler) Handle(ctx context.Context, command RejectPayoutCommand) error {
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

	request, err := uow.PayoutRepository().Get(ctx, command.PayoutID())
	if err != nil {
		return err
	}

	if err = request.Reject(command.AdminID(), command.Reason()); err != nil {
		return err
	}

	if err = uow.PayoutRepository().Update(ctx, request); err != nil {
		return err
	}

	if err = uow.WorkerRepository().CreditBalance(ctx, request.WorkerID(), request.Amount()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, request.WorkerID(), ports.Event{
		Name: ports.EventPayoutRejected,
		Data: map[string]any{
			"payout_id": request.ID().String(),
			"amount":    request.Amount().String(),
			"reason":    request.RejectReason(),
		},
	})

	// Mail is best-effort and addressed by worker identifier; the dispatcher
	// resolves the actual mailbox. A failed send never fails the rejection.
	_ = h.mailer.Send(ctx, request.WorkerID().String(),
		"Your payout request was declined",
		fmt.Sprintf("Payout request %s for %s was declined: %s",
			request.ID().String(), request.Amount().String(), request.RejectReason()),
	)

	return nil
}
