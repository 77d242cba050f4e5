package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrRejectPayoutCommandIsNotConstructed = errors.New(
	"RejectPayoutCommand must be created via NewRejectPayoutCommand constructor",
)

// RejectPayoutCommand represents an administrator declining a payout
// request. A reason is mandatory; it is stored and shown to the worker.
type RejectPayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID kernel.UUID
	adminID  kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRejectPayoutCommand creates a command to reject a payout request.
func NewRejectPayoutCommand(payoutID, adminID kernel.UUID, reason string) (RejectPayoutCommand, error) {
	rejectCommand := RejectPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setPayoutID(payoutID),
		rejectCommand.setAdminID(adminID),
		rejectCommand.setReason(reason),
	); err != nil {
		return RejectPayoutCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPayoutCommand) Validate() error {
	return c.guard.Validate(ErrRejectPayoutCommandIsNotConstructed)
}

// PayoutID returns the payout request being rejected.
func (c RejectPayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// AdminID returns the reviewing administrator's identifier.
func (c RejectPayoutCommand) AdminID() kernel.UUID {
	return c.adminID
}

// Reason returns the rejection reason shown to the worker.
func (c RejectPayoutCommand) Reason() string {
	return c.reason
}

func (c *RejectPayoutCommand) setPayoutID(payoutID kernel.UUID) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}

	c.payoutID = payoutID
	return nil
}

func (c *RejectPayoutCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *RejectPayoutCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
