package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrRecalculateBalanceCommandIsNotConstructed = errors.New(
	"RecalculateBalanceCommand must be created via NewRecalculateBalanceCommand constructor",
)

// RecalculateBalanceCommand represents a request to rebuild one worker's
// balance from the order and payout ledgers.
type RecalculateBalanceCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecalculateBalanceCommand creates a command to recalculate a worker's balance.
func NewRecalculateBalanceCommand(workerID kernel.UUID) (RecalculateBalanceCommand, error) {
	recalculateCommand := RecalculateBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := recalculateCommand.setWorkerID(workerID); err != nil {
		return RecalculateBalanceCommand{}, err
	}

	return recalculateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecalculateBalanceCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateBalanceCommandIsNotConstructed)
}

// WorkerID returns the worker whose balance is being rebuilt.
func (c RecalculateBalanceCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *RecalculateBalanceCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
