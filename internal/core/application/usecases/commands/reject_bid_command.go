package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrRejectBidCommandIsNotConstructed = errors.New(
	"RejectBidCommand must be created via NewRejectBidCommand constructor",
)

// RejectBidCommand represents a client declining a single bid on their order.
type RejectBidCommand struct { //nolint:recvcheck //using for validation
	bidID    kernel.UUID
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectBidCommand creates a command to reject a bid.
func NewRejectBidCommand(bidID, clientID kernel.UUID) (RejectBidCommand, error) {
	rejectCommand := RejectBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setBidID(bidID),
		rejectCommand.setClientID(clientID),
	); err != nil {
		return RejectBidCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectBidCommand) Validate() error {
	return c.guard.Validate(ErrRejectBidCommandIsNotConstructed)
}

// BidID returns the bid being rejected.
func (c RejectBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// ClientID returns the rejecting client's identifier.
func (c RejectBidCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c *RejectBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *RejectBidCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
