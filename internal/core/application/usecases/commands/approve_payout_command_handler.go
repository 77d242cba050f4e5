package commands

import (
	"context"

	"workorders/internal/core/ports"
)

// ApprovePayoutCommandHandler handles administrators clearing payout
// requests for processing. The reservation made at request time stays in
// place; approval only changes the request's status.
type ApprovePayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
	publisher  ports.EventPublisher
}

// NewApprovePayoutCommandHandler creates a handler for payout approval.
func NewApprovePayoutCommandHandler(
	uowFactory PayoutUoWFactory,
	publisher ports.EventPublisher,
) ApprovePayoutCommandHandler {
	return ApprovePayoutCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the approval command. Only pending requests can be
// approved; anything else fails with an invalid-state error.
func (h ApprovePayoutCommandHandler) Handle(ctx context.Context, command ApprovePayoutCommand) error {
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

	if err = request.Approve(command.AdminID()); err != nil {
		return err
	}

	if err = uow.PayoutRepository().Update(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, request.WorkerID(), ports.Event{
		Name: ports.EventPayoutApproved,
		Data: map[string]any{
			"payout_id": request.ID().String(),
			"amount":    request.Amount().String(),
		},
	})

	return nil
}
