package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrRecordOrderCompletionCommandIsNotConstructed = errors.New(
	"RecordOrderCompletionCommand must be created via NewRecordOrderCompletionCommand constructor",
)

// RecordOrderCompletionCommand represents a request to (re-)settle a
// completed order: credit the worker's earnings and advance tier
// progression if that has not happened yet.
type RecordOrderCompletionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordOrderCompletionCommand creates a command to settle a completed order.
func NewRecordOrderCompletionCommand(orderID kernel.UUID) (RecordOrderCompletionCommand, error) {
	completionCommand := RecordOrderCompletionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := completionCommand.setOrderID(orderID); err != nil {
		return RecordOrderCompletionCommand{}, err
	}

	return completionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordOrderCompletionCommand) Validate() error {
	return c.guard.Validate(ErrRecordOrderCompletionCommandIsNotConstructed)
}

// OrderID returns the order being settled.
func (c RecordOrderCompletionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RecordOrderCompletionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
