package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/payout"
	"workorders/internal/pkg/guard"
)

var (
	ErrRequestPayoutCommandIsNotConstructed = errors.New(
		"RequestPayoutCommand must be created via NewRequestPayoutCommand constructor",
	)
	ErrPayoutAmountIsInvalid  = errors.New("payout amount must be greater than 0")
	ErrPayoutTargetIsRequired = errors.New("payout target account is required")
)

// RequestPayoutCommand represents a worker's request to withdraw part of
// their earned balance.
type RequestPayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID kernel.UUID
	workerID kernel.UUID
	amount   kernel.Money
	method   payout.Method
	target   string

	guard guard.ConstructorGuard
}

// NewRequestPayoutCommand creates a command to request a payout.
// The amount must be positive, the method known and the target non-empty.
func NewRequestPayoutCommand(
	payoutID, workerID kernel.UUID,
	amount kernel.Money,
	method payout.Method,
	target string,
) (RequestPayoutCommand, error) {
	payoutCommand := RequestPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payoutCommand.setPayoutID(payoutID),
		payoutCommand.setWorkerID(workerID),
		payoutCommand.setAmount(amount),
		payoutCommand.setMethod(method),
		payoutCommand.setTarget(target),
	); err != nil {
		return RequestPayoutCommand{}, err
	}

	return payoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPayoutCommand) Validate() error {
	return c.guard.Validate(ErrRequestPayoutCommandIsNotConstructed)
}

// PayoutID returns the unique identifier for the new payout request.
func (c RequestPayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// WorkerID returns the requesting worker's identifier.
func (c RequestPayoutCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Amount returns the requested withdrawal amount.
func (c RequestPayoutCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns the chosen withdrawal channel.
func (c RequestPayoutCommand) Method() payout.Method {
	return c.method
}

// Target returns the destination account.
func (c RequestPayoutCommand) Target() string {
	return c.target
}

func (c *RequestPayoutCommand) setPayoutID(payoutID kernel.UUID) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}

	c.payoutID = payoutID
	return nil
}

func (c *RequestPayoutCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *RequestPayoutCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return ErrPayoutAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *RequestPayoutCommand) setMethod(method payout.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *RequestPayoutCommand) setTarget(target string) error {
	if target == "" {
		return ErrPayoutTargetIsRequired
	}

	c.target = target
	return nil
}
