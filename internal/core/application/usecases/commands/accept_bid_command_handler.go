package commands

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"
)

// ErrOrderOwnershipMismatch is returned when someone other than the order's
// client tries to decide its bids.
var ErrOrderOwnershipMismatch = errors.New("order does not belong to this client")

// AcceptBidCommandHandler orchestrates bid acceptance: exactly one bid wins
// and the order is assigned to the winning worker.
//
// Concurrency: the order row is locked for the duration of the transaction,
// so two clients (or one client double-clicking) racing to accept bids on
// the same order serialize. The loser of the race finds the order no longer
// pending and gets ErrOrderNotBiddable.
type AcceptBidCommandHandler struct {
	uowFactory BiddingUoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptBidCommandHandler creates a handler for bid acceptance operations.
func NewAcceptBidCommandHandler(
	uowFactory BiddingUoWFactory,
	publisher ports.EventPublisher,
) AcceptBidCommandHandler {
	return AcceptBidCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the bid acceptance command.
// Accepts the bid, rejects all competing pending bids and assigns the order
// to the winning worker in one transaction. The winning worker is notified
// after commit.
func (h AcceptBidCommandHandler) Handle(ctx context.Context, command AcceptBidCommand) error {
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

	winningBid, err := uow.BidRepository().Get(ctx, command.BidID())
	if err != nil {
		return err
	}

	// Lock the order row first: every acceptance for this order serializes here.
	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, winningBid.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.ClientID().IsEqual(command.ClientID()) {
		return ErrOrderOwnershipMismatch
	}
	if aggregate.Status() != order.Pending {
		return ErrOrderNotBiddable
	}

	if err = winningBid.Accept(); err != nil {
		return err
	}

	if err = aggregate.AssignWorker(winningBid.WorkerID()); err != nil {
		return err
	}

	if err = uow.BidRepository().Update(ctx, winningBid); err != nil {
		return err
	}

	if err = uow.BidRepository().RejectOtherPending(ctx, aggregate.ID(), winningBid.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The assignment moved the order out of pending; both parties see the
	// status change with the accepting client as the actor.
	statusChanged := ports.Event{
		Name: ports.EventOrderStatusChanged,
		Data: map[string]any{
			"order_id": aggregate.ID().String(),
			"from":     order.Pending.String(),
			"to":       aggregate.Status().String(),
			"actor":    command.ClientID().String(),
		},
	}
	h.publisher.Publish(ctx, aggregate.ClientID(), statusChanged)
	h.publisher.Publish(ctx, winningBid.WorkerID(), statusChanged)

	h.publisher.Publish(ctx, winningBid.WorkerID(), ports.Event{
		Name: ports.EventBidAccepted,
		Data: map[string]any{
			"order_id": aggregate.ID().String(),
			"bid_id":   winningBid.ID().String(),
		},
	})

	return nil
}
