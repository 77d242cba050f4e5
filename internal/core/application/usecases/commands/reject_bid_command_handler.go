package commands

import (
	"context"
)

// RejectBidCommandHandler handles a client declining an individual bid.
// Rejecting a bid leaves the order open; other pending bids stay live.
type RejectBidCommandHandler struct {
	uowFactory BiddingUoWFactory
}

// NewRejectBidCommandHandler creates a handler for bid rejection operations.
func NewRejectBidCommandHandler(uowFactory BiddingUoWFactory) RejectBidCommandHandler {
	return RejectBidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bid rejection command. Rejecting an already rejected
// bid is a no-op; rejecting an accepted bid fails.
func (h RejectBidCommandHandler) Handle(ctx context.Context, command RejectBidCommand) error {
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

	rejectedBid, err := uow.BidRepository().Get(ctx, command.BidID())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, rejectedBid.OrderID())
	if err != nil {
		return err
	}
	if !aggregate.ClientID().IsEqual(command.ClientID()) {
		return ErrOrderOwnershipMismatch
	}

	if err = rejectedBid.Reject(); err != nil {
		return err
	}

	if err = uow.BidRepository().Update(ctx, rejectedBid); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
