package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrApprovePayoutCommandIsNotConstructed = errors.New(
	"ApprovePayoutCommand must be created via NewApprovePayoutCommand constructor",
)

// ApprovePayoutCommand represents an administrator clearing a payout request
// for processing.
type ApprovePayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID kernel.UUID
	adminID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewApprovePayoutCommand creates a command to approve a payout request.
func NewApprovePayoutCommand(payoutID, adminID kernel.UUID) (ApprovePayoutCommand, error) {
	approveCommand := ApprovePayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		approveCommand.setPayoutID(payoutID),
		approveCommand.setAdminID(adminID),
	); err != nil {
		return ApprovePayoutCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePayoutCommand) Validate() error {
	return c.guard.Validate(ErrApprovePayoutCommandIsNotConstructed)
}

// PayoutID returns the payout request being approved.
func (c ApprovePayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// AdminID returns the reviewing administrator's identifier.
func (c ApprovePayoutCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c *ApprovePayoutCommand) setPayoutID(payoutID kernel.UUID) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}

	c.payoutID = payoutID
	return nil
}

func (c *ApprovePayoutCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}
