// Package bid contains the Bid entity: a worker's offer to fulfil an order,
// competing with other bids until one is accepted.
package bid

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

// ErrBidIsNotConstructed is returned when a Bid instance was not created
// through NewBid or RestoreBid.
var ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid or RestoreBid")

// Bid is a worker's offer on an order. Bids are created by workers, mutated
// only through Accept and Reject, and never deleted.
//
// Invariant (enforced together with the bid ledger): at most one bid per
// order is ever accepted; the remaining pending bids are rejected when one
// wins.
type Bid struct {
	id       kernel.UUID
	orderID  kernel.UUID
	workerID kernel.UUID
	amount   kernel.Money
	message  string
	status   Status

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewBid creates a pending bid by a worker on an order.
// The offered amount must be positive; the message may be empty.
func NewBid(id, orderID, workerID kernel.UUID, amount kernel.Money, message string) (*Bid, error) {
	b := &Bid{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setWorkerID(workerID),
		b.setAmount(amount),
	); err != nil {
		return nil, err
	}

	b.message = message
	now := time.Now().UTC()
	b.createdAt = now
	b.updatedAt = now
	return b, nil
}

// RestoreBid reconstructs a Bid from persistence.
func RestoreBid(
	id, orderID, workerID kernel.UUID,
	amount kernel.Money,
	message string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Bid, error) {
	b := &Bid{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setWorkerID(workerID),
		b.setAmount(amount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	b.message = message
	b.createdAt = createdAt
	b.updatedAt = updatedAt
	return b, nil
}

// Validate ensures the Bid was constructed through NewBid or RestoreBid.
func (b *Bid) Validate() error {
	if b == nil {
		return ErrBidIsNotConstructed
	}
	return b.guard.Validate(ErrBidIsNotConstructed)
}

// ID returns the bid's unique identifier.
func (b *Bid) ID() kernel.UUID {
	return b.id
}

// OrderID returns the order the bid competes for. Callers must derive the
// order from the bid record, never from external input, when accepting.
func (b *Bid) OrderID() kernel.UUID {
	return b.orderID
}

// WorkerID returns the bidding worker's identifier.
func (b *Bid) WorkerID() kernel.UUID {
	return b.workerID
}

// Amount returns the offered amount.
func (b *Bid) Amount() kernel.Money {
	return b.amount
}

// Message returns the worker's free-text pitch.
func (b *Bid) Message() string {
	return b.message
}

// Status returns the bid's current status.
func (b *Bid) Status() Status {
	return b.status
}

// CreatedAt returns the creation timestamp.
func (b *Bid) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (b *Bid) UpdatedAt() time.Time {
	return b.updatedAt
}

// Accept marks the bid as the order's winner.
// Only pending bids can be accepted.
func (b *Bid) Accept() error {
	if b.status != Pending {
		return errs.NewInvalidStateError("bid", b.status.String(), "accepted")
	}

	b.status = Accepted
	b.updatedAt = time.Now().UTC()
	return nil
}

// Reject marks the bid as lost. Rejecting an already rejected bid is a
// no-op; rejecting an accepted bid is not allowed.
func (b *Bid) Reject() error {
	if b.status == Rejected {
		return nil
	}
	if b.status != Pending {
		return errs.NewInvalidStateError("bid", b.status.String(), "rejected")
	}

	b.status = Rejected
	b.updatedAt = time.Now().UTC()
	return nil
}

func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bid) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	b.orderID = orderID
	return nil
}

func (b *Bid) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	b.workerID = workerID
	return nil
}

func (b *Bid) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("bid amount must be greater than 0")
	}
	b.amount = amount
	return nil
}
