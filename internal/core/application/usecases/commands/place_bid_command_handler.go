package commands

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/bid"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/worker"
	"workorders/internal/core/ports"
)

var (
	// ErrOrderNotBiddable is returned when the order is not open for bids,
	// either because it left pending status or because a bid was already accepted.
	ErrOrderNotBiddable = errors.New("order is not open for bids")

	// ErrWorkerNotEligible is returned when the worker's standing does not
	// permit the operation.
	ErrWorkerNotEligible = errors.New("worker is not eligible")

	// ErrBidAlreadyPlaced is returned when the worker already has a pending
	// bid on the order.
	ErrBidAlreadyPlaced = errors.New("worker already has a pending bid on this order")
)

// PlaceBidCommandHandler handles workers bidding on open orders.
//
// Business rules:
//   - Only orders in pending status accept bids
//   - Only approved workers may bid
//   - A worker holds at most one pending bid per order
//
// The order's client is notified of the new bid after commit.
type PlaceBidCommandHandler struct {
	uowFactory BiddingUoWFactory
	publisher  ports.EventPublisher
}

// NewPlaceBidCommandHandler creates a handler for bid placement operations.
func NewPlaceBidCommandHandler(
	uowFactory BiddingUoWFactory,
	publisher ports.EventPublisher,
) PlaceBidCommandHandler {
	return PlaceBidCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the bid placement command.
// Returns ErrOrderNotBiddable, ErrWorkerNotEligible or ErrBidAlreadyPlaced
// for rule violations.
func (h PlaceBidCommandHandler) Handle(ctx context.Context, command PlaceBidCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if aggregate.Status() != order.Pending {
		return ErrOrderNotBiddable
	}

	progress, err := uow.WorkerRepository().Get(ctx, command.WorkerID())
	if err != nil {
		return err
	}
	if progress.Approval() != worker.Approved {
		return ErrWorkerNotEligible
	}

	exists, err := uow.BidRepository().HasPendingForWorker(ctx, command.OrderID(), command.WorkerID())
	if err != nil {
		return err
	}
	if exists {
		return ErrBidAlreadyPlaced
	}

	newBid, err := bid.NewBid(
		command.BidID(), command.OrderID(), command.WorkerID(), command.Amount(), command.Message(),
	)
	if err != nil {
		return err
	}

	if err = uow.BidRepository().Add(ctx, newBid); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, aggregate.ClientID(), ports.Event{
		Name: ports.EventBidPlaced,
		Data: map[string]any{
			"order_id": command.OrderID().String(),
			"bid_id":   command.BidID().String(),
			"amount":   command.Amount().String(),
		},
	})

	return nil
}
