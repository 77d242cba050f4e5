package order

import (
	"errors"
	"fmt"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrDeliverableIsRequired is returned when a deliverable reference is empty.
	ErrDeliverableIsRequired = errs.NewValueIsRequiredError("deliverable reference")
)

// Order is the aggregate root for one unit of work flowing from bidding
// through delivery to settlement.
//
// Order maintains these invariants:
//   - A valid identifier and owning client reference.
//   - Amount charged to the client is positive.
//   - Page and slide counts are non-negative, and at least one is positive.
//   - Status transitions follow the closed transition table in Status.
//   - A worker reference is present whenever the status requires one.
//
// Orders are never deleted; they terminate in completed or cancelled.
type Order struct {
	id       kernel.UUID
	clientID kernel.UUID

	// workerID is the assigned worker (nil until a bid is accepted).
	workerID *kernel.UUID

	// managerID is the coordinating manager (nil if unmanaged).
	managerID *kernel.UUID

	status   Status
	amount   kernel.Money
	pages    int
	slides   int
	workType WorkType

	// deliverableRef points at the uploaded deliverable artifact. Storage of
	// the artifact itself is owned by the file service, not this aggregate.
	deliverableRef string

	// earningsCounted guards against crediting a completed order twice.
	earningsCounted bool

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in pending status.
//
// Parameters:
//   - id: unique order identifier
//   - clientID: the client that owns the order
//   - amount: the price charged to the client (must be positive)
//   - pages, slides: quantity measures (non-negative, not both zero)
//   - workType: work classification used to select the piece rate
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	amount kernel.Money,
	pages, slides int,
	workType WorkType,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setAmount(amount),
		o.setVolume(pages, slides),
		o.setWorkType(workType),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// assignment and bookkeeping flags. The status/worker consistency invariant
// is re-checked so corrupted rows are rejected at the boundary.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	workerID *kernel.UUID,
	managerID *kernel.UUID,
	status Status,
	amount kernel.Money,
	pages, slides int,
	workType WorkType,
	deliverableRef string,
	earningsCounted bool,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setAmount(amount),
		o.setVolume(pages, slides),
		o.setWorkType(workType),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if status.RequiresWorker() && workerID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order is inconsistent",
			fmt.Errorf("status %s requires an assigned worker", status),
		)
	}

	o.workerID = workerID
	o.managerID = managerID
	o.deliverableRef = deliverableRef
	o.earningsCounted = earningsCounted
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the owning client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Worker returns the assigned worker's identifier, or nil if unassigned.
func (o *Order) Worker() *kernel.UUID {
	return o.workerID
}

// Manager returns the coordinating manager's identifier, or nil if unmanaged.
func (o *Order) Manager() *kernel.UUID {
	return o.managerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Amount returns the price charged to the client.
func (o *Order) Amount() kernel.Money {
	return o.amount
}

// Pages returns the order's page count.
func (o *Order) Pages() int {
	return o.pages
}

// Slides returns the order's slide count.
func (o *Order) Slides() int {
	return o.slides
}

// WorkType returns the order's work classification.
func (o *Order) WorkType() WorkType {
	return o.workType
}

// DeliverableRef returns the reference to the uploaded deliverable artifact.
// Empty until a deliverable is attached.
func (o *Order) DeliverableRef() string {
	return o.deliverableRef
}

// HasDeliverable reports whether a deliverable artifact is attached.
func (o *Order) HasDeliverable() bool {
	return o.deliverableRef != ""
}

// EarningsCounted reports whether the order was already credited to the
// worker's earnings.
func (o *Order) EarningsCounted() bool {
	return o.earningsCounted
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Transition moves the order to target status.
//
// Moving to the current status succeeds as a no-op. Illegal moves fail with
// an InvalidTransitionError. Moving into a status that requires a worker
// fails when no worker is assigned.
func (o *Order) Transition(target Status) error {
	if o.status == target {
		return nil
	}

	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	if newStatus.RequiresWorker() && o.workerID == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"order is inconsistent",
			fmt.Errorf("status %s requires an assigned worker", newStatus),
		)
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// AssignWorker attaches a worker and moves the order to assigned status.
// Only orders in pending status can be assigned.
func (o *Order) AssignWorker(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Transition(Assigned)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.workerID = &workerID
	o.updatedAt = time.Now().UTC()
	return nil
}

// AssignManager attaches a coordinating manager to the order.
func (o *Order) AssignManager(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	o.managerID = &managerID
	o.updatedAt = time.Now().UTC()
	return nil
}

// AttachDeliverable records the reference to an uploaded deliverable artifact.
func (o *Order) AttachDeliverable(ref string) error {
	if ref == "" {
		return ErrDeliverableIsRequired
	}

	o.deliverableRef = ref
	o.updatedAt = time.Now().UTC()
	return nil
}

// MarkEarningsCounted flags the order as credited to worker earnings.
// The atomic flip happens in persistence; this keeps the in-memory
// aggregate consistent with it.
func (o *Order) MarkEarningsCounted() {
	o.earningsCounted = true
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	o.amount = amount
	return nil
}

func (o *Order) setVolume(pages, slides int) error {
	if pages < 0 || slides < 0 || pages+slides == 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume is invalid",
			fmt.Errorf("pages=%d slides=%d must be non-negative and not both zero", pages, slides))
	}
	o.pages = pages
	o.slides = slides
	return nil
}

func (o *Order) setWorkType(workType WorkType) error {
	if err := workType.Validate(); err != nil {
		return err
	}
	o.workType = workType
	return nil
}
