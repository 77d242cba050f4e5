package commands

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/order"
)

// ErrOrderNotCompleted is returned when settlement is requested for an order
// that has not reached completed status.
var ErrOrderNotCompleted = errors.New("order is not completed")

// RecordOrderCompletionCommandHandler settles completed orders whose
// earnings were not credited by the completion transition itself, e.g.
// orders found by reconciliation after a missed settlement.
//
// Settlement is idempotent: re-running it for an already credited order is
// a no-op.
type RecordOrderCompletionCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewRecordOrderCompletionCommandHandler creates a handler for order settlement.
func NewRecordOrderCompletionCommandHandler(
	uowFactory SettlementUoWFactory,
) RecordOrderCompletionCommandHandler {
	return RecordOrderCompletionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
// Returns ErrOrderNotCompleted when the order has not finished its lifecycle.
func (h RecordOrderCompletionCommandHandler) Handle(
	ctx context.Context,
	command RecordOrderCompletionCommand,
) error {
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

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if aggregate.Status() != order.Completed {
		return ErrOrderNotCompleted
	}

	if err = accrueOrderEarnings(ctx, uow, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
