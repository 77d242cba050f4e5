// Package payout contains the PayoutRequest aggregate: a worker's request
// to withdraw earned balance, moving through admin review and processor
// execution.
package payout

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

// ErrPayoutRequestIsNotConstructed is returned when a PayoutRequest instance
// was not created through NewPayoutRequest or RestorePayoutRequest.
var ErrPayoutRequestIsNotConstructed = errors.New(
	"PayoutRequest must be created via NewPayoutRequest or RestorePayoutRequest")

// PayoutRequest is a worker's withdrawal request. The requested amount is
// reserved from the worker's balance at creation time and stays reserved
// until the request either completes or is rejected; rejection credits the
// exact reserved amount back.
type PayoutRequest struct {
	id       kernel.UUID
	workerID kernel.UUID
	amount   kernel.Money
	method   Method
	target   string
	status   Status

	// reviewedBy is the admin who approved or rejected the request.
	reviewedBy *kernel.UUID

	// rejectReason is required on rejection and empty otherwise.
	rejectReason string

	// processorRef is the external payment reference set on completion.
	processorRef string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewPayoutRequest creates a pending withdrawal request.
// The amount must be positive and the target account must not be empty.
func NewPayoutRequest(
	id, workerID kernel.UUID,
	amount kernel.Money,
	method Method,
	target string,
) (*PayoutRequest, error) {
	p := &PayoutRequest{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setWorkerID(workerID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setTarget(target),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.createdAt = now
	p.updatedAt = now
	return p, nil
}

// RestorePayoutRequest reconstructs a PayoutRequest from persistence.
func RestorePayoutRequest(
	id, workerID kernel.UUID,
	amount kernel.Money,
	method Method,
	target string,
	status Status,
	reviewedBy *kernel.UUID,
	rejectReason, processorRef string,
	createdAt, updatedAt time.Time,
) (*PayoutRequest, error) {
	p := &PayoutRequest{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setWorkerID(workerID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setTarget(target),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if reviewedBy != nil {
		if err := reviewedBy.Validate(); err != nil {
			return nil, err
		}
		p.reviewedBy = reviewedBy
	}

	p.rejectReason = rejectReason
	p.processorRef = processorRef
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the PayoutRequest was constructed through a constructor.
func (p *PayoutRequest) Validate() error {
	if p == nil {
		return ErrPayoutRequestIsNotConstructed
	}
	return p.guard.Validate(ErrPayoutRequestIsNotConstructed)
}

// ID returns the request's unique identifier.
func (p *PayoutRequest) ID() kernel.UUID {
	return p.id
}

// WorkerID returns the requesting worker's identifier.
func (p *PayoutRequest) WorkerID() kernel.UUID {
	return p.workerID
}

// Amount returns the reserved withdrawal amount.
func (p *PayoutRequest) Amount() kernel.Money {
	return p.amount
}

// Method returns the chosen withdrawal channel.
func (p *PayoutRequest) Method() Method {
	return p.method
}

// Target returns the destination account for the chosen method.
func (p *PayoutRequest) Target() string {
	return p.target
}

// Status returns the request's current status.
func (p *PayoutRequest) Status() Status {
	return p.status
}

// ReviewedBy returns the admin who reviewed the request, if any.
func (p *PayoutRequest) ReviewedBy() *kernel.UUID {
	return p.reviewedBy
}

// RejectReason returns the reason given on rejection.
func (p *PayoutRequest) RejectReason() string {
	return p.rejectReason
}

// ProcessorRef returns the external payment reference, if completed.
func (p *PayoutRequest) ProcessorRef() string {
	return p.processorRef
}

// CreatedAt returns the creation timestamp.
func (p *PayoutRequest) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (p *PayoutRequest) UpdatedAt() time.Time {
	return p.updatedAt
}

// Approve clears a pending request for processing.
func (p *PayoutRequest) Approve(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	if p.status != Pending {
		return errs.NewInvalidStateError("payout request", p.status.String(), "approved")
	}

	p.status = Approved
	p.reviewedBy = &adminID
	p.updatedAt = time.Now().UTC()
	return nil
}

// Reject declines a pending or approved request. A non-empty reason is
// mandatory; the caller is responsible for crediting the reserved amount
// back to the worker in the same transaction.
func (p *PayoutRequest) Reject(adminID kernel.UUID, reason string) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if p.status != Pending && p.status != Approved {
		return errs.NewInvalidStateError("payout request", p.status.String(), "rejected")
	}

	p.status = Rejected
	p.reviewedBy = &adminID
	p.rejectReason = reason
	p.updatedAt = time.Now().UTC()
	return nil
}

// BeginProcessing hands an approved request to the payment processor.
// Marking the request processing before the external call keeps a second
// concurrent processor run from picking it up.
func (p *PayoutRequest) BeginProcessing() error {
	if p.status != Approved {
		return errs.NewInvalidStateError("payout request", p.status.String(), "processed")
	}

	p.status = Processing
	p.updatedAt = time.Now().UTC()
	return nil
}

// Complete records the processor's confirmation and its payment reference.
func (p *PayoutRequest) Complete(processorRef string) error {
	if processorRef == "" {
		return errs.NewValueIsRequiredError("processorRef")
	}
	if p.status != Processing {
		return errs.NewInvalidStateError("payout request", p.status.String(), "completed")
	}

	p.status = Completed
	p.processorRef = processorRef
	p.updatedAt = time.Now().UTC()
	return nil
}

// FailProcessing returns a processing request to approved after a processor
// failure so it can be retried. The reservation is untouched.
func (p *PayoutRequest) FailProcessing() error {
	if p.status != Processing {
		return errs.NewInvalidStateError("payout request", p.status.String(), "returned to approved")
	}

	p.status = Approved
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *PayoutRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *PayoutRequest) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	p.workerID = workerID
	return nil
}

func (p *PayoutRequest) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("payout amount must be greater than 0")
	}
	p.amount = amount
	return nil
}

func (p *PayoutRequest) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *PayoutRequest) setTarget(target string) error {
	if target == "" {
		return errs.NewValueIsRequiredError("target")
	}
	p.target = target
	return nil
}
