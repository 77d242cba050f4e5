package commands

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"
)

// ErrDeliverableMissing is returned when an order is moved to delivered
// without an attached deliverable artifact.
var ErrDeliverableMissing = errors.New("order has no deliverable attached")

// TransitionOrderCommandHandler drives the order through its lifecycle.
//
// Business rules:
//   - Transitions follow the order status machine; illegal moves fail
//   - Moving to delivered requires a deliverable artifact
//   - The move to completed settles the order: the worker's earnings are
//     credited and tier progression advances, exactly once, in the same
//     transaction as the status change
//
// Both parties are notified of the status change after commit.
type TransitionOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
	publisher  ports.EventPublisher
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(
	uowFactory SettlementUoWFactory,
	publisher ports.EventPublisher,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transition command.
// The order row is locked so concurrent transitions of the same order
// serialize and each one validates against the latest status.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) error {
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
	previous := aggregate.Status()

	if command.DeliverableRef() != "" {
		if err = aggregate.AttachDeliverable(command.DeliverableRef()); err != nil {
			return err
		}
	}

	if command.Target() == order.Delivered && !aggregate.HasDeliverable() {
		return ErrDeliverableMissing
	}

	if err = aggregate.Transition(command.Target()); err != nil {
		return err
	}

	if aggregate.Status() == order.Completed {
		if err = accrueOrderEarnings(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyStatusChanged(ctx, aggregate, previous, command.Actor())
	return nil
}

func (h TransitionOrderCommandHandler) notifyStatusChanged(
	ctx context.Context,
	aggregate *order.Order,
	previous order.Status,
	actor kernel.UUID,
) {
	if aggregate.Status() == previous {
		return
	}

	event := ports.Event{
		Name: ports.EventOrderStatusChanged,
		Data: map[string]any{
			"order_id": aggregate.ID().String(),
			"from":     previous.String(),
			"to":       aggregate.Status().String(),
			"actor":    actor.String(),
		},
	}

	h.publisher.Publish(ctx, aggregate.ClientID(), event)
	if workerID := aggregate.Worker(); workerID != nil {
		h.publisher.Publish(ctx, *workerID, event)
	}
}
