package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrAcceptBidCommandIsNotConstructed = errors.New(
	"AcceptBidCommand must be created via NewAcceptBidCommand constructor",
)

// AcceptBidCommand represents a client accepting one bid on their order.
// Only the bid identifier is taken from the caller; the order is always
// derived from the stored bid record.
type AcceptBidCommand struct { //nolint:recvcheck //using for validation
	bidID    kernel.UUID
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptBidCommand creates a command to accept a bid.
func NewAcceptBidCommand(bidID, clientID kernel.UUID) (AcceptBidCommand, error) {
	acceptCommand := AcceptBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setBidID(bidID),
		acceptCommand.setClientID(clientID),
	); err != nil {
		return AcceptBidCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptBidCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBidCommandIsNotConstructed)
}

// BidID returns the bid being accepted.
func (c AcceptBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// ClientID returns the accepting client's identifier.
func (c AcceptBidCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c *AcceptBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *AcceptBidCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
