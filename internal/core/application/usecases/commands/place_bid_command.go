package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var (
	ErrPlaceBidCommandIsNotConstructed = errors.New(
		"PlaceBidCommand must be created via NewPlaceBidCommand constructor",
	)
	ErrBidAmountIsInvalid = errors.New("bid amount must be greater than 0")
)

// PlaceBidCommand represents a worker's offer on an open order.
type PlaceBidCommand struct { //nolint:recvcheck //using for validation
	bidID    kernel.UUID
	orderID  kernel.UUID
	workerID kernel.UUID
	amount   kernel.Money
	message  string

	guard guard.ConstructorGuard
}

// NewPlaceBidCommand creates a command to place a bid on an order.
// The message is optional; the amount must be positive.
func NewPlaceBidCommand(
	bidID, orderID, workerID kernel.UUID,
	amount kernel.Money,
	message string,
) (PlaceBidCommand, error) {
	bidCommand := PlaceBidCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bidCommand.setBidID(bidID),
		bidCommand.setOrderID(orderID),
		bidCommand.setWorkerID(workerID),
		bidCommand.setAmount(amount),
	); err != nil {
		return PlaceBidCommand{}, err
	}

	return bidCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceBidCommand) Validate() error {
	return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
}

// BidID returns the unique identifier for the new bid.
func (c PlaceBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// OrderID returns the order being bid on.
func (c PlaceBidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkerID returns the bidding worker's identifier.
func (c PlaceBidCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Amount returns the offered amount.
func (c PlaceBidCommand) Amount() kernel.Money {
	return c.amount
}

// Message returns the worker's free-text pitch.
func (c PlaceBidCommand) Message() string {
	return c.message
}

func (c *PlaceBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *PlaceBidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceBidCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *PlaceBidCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return ErrBidAmountIsInvalid
	}

	c.amount = amount
	return nil
}
