package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrProcessPayoutCommandIsNotConstructed = errors.New(
	"ProcessPayoutCommand must be created via NewProcessPayoutCommand constructor",
)

// ProcessPayoutCommand represents a request to execute an approved payout
// through the external payment processor.
type ProcessPayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessPayoutCommand creates a command to process an approved payout.
func NewProcessPayoutCommand(payoutID kernel.UUID) (ProcessPayoutCommand, error) {
	processCommand := ProcessPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := processCommand.setPayoutID(payoutID); err != nil {
		return ProcessPayoutCommand{}, err
	}

	return processCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPayoutCommand) Validate() error {
	return c.guard.Validate(ErrProcessPayoutCommandIsNotConstructed)
}

// PayoutID returns the payout request being processed.
func (c ProcessPayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

func (c *ProcessPayoutCommand) setPayoutID(payoutID kernel.UUID) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}

	c.payoutID = payoutID
	return nil
}
