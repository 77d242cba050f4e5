package order

import (
	"errors"
	"fmt"
	"strings"

	"workorders/internal/pkg/errs"
)

// ErrInvalidTransition classifies rejected status transitions for errors.Is checks.
var ErrInvalidTransition = errors.New("invalid transition")

// Status represents the lifecycle state of a work order.
// It implements a state machine with a closed transition table so orders
// always follow the agreed workflow between client, worker and manager.
//
// State transitions:
//
//	pending ──> assigned ──> in_progress ──> delivered ──> approved ──> paid ──> completed
//	                 │             │    ┌───────┘│  └──────────paid─────┘│
//	                 └── editing <─┴────┤        └─> revision ──> delivered
//	                                    │
//	            (cancelled reachable from every non-terminal status except delivered/approved)
//
// completed and cancelled are terminal: no outgoing transitions exist.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is open for bids.
	Pending

	// Assigned indicates a winning bid was accepted and a worker is attached.
	Assigned

	// InProgress indicates the worker started working on the order.
	InProgress

	// Editing indicates the work is being reworked before delivery.
	Editing

	// Delivered indicates the worker submitted a deliverable for review.
	Delivered

	// Revision indicates the client sent the deliverable back for changes.
	Revision

	// Approved indicates the client accepted the deliverable.
	Approved

	// Paid indicates the client's payment was confirmed.
	Paid

	// Completed is a terminal status: the order is settled.
	Completed

	// Cancelled is a terminal status: the order was closed without settlement.
	Cancelled
)

// transitions is the closed set of legal moves per current status.
// Terminal statuses have no entry.
var transitions = map[Status][]Status{
	Pending:    {Assigned, Cancelled},
	Assigned:   {InProgress, Cancelled, Editing},
	InProgress: {Delivered, Cancelled, Editing},
	Editing:    {Delivered, Revision, Cancelled},
	Delivered:  {Revision, Paid, Approved},
	Revision:   {Delivered, Cancelled, Editing},
	Approved:   {Paid},
	Paid:       {Completed, Cancelled},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Editing:    "editing",
		Delivered:  "delivered",
		Revision:   "revision",
		Approved:   "approved",
		Paid:       "paid",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a status name received from an external boundary.
// Unknown names are rejected rather than defaulted.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is a member of the closed status set.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, e.g. "in_progress".
// Invalid values yield "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// AllowedNext returns the set of statuses reachable from s.
// Terminal and invalid statuses return an empty set.
func (s Status) AllowedNext() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether target is a legal next status.
// A same-status move is always allowed (idempotent no-op).
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// RequiresWorker reports whether orders in this status must have an
// assigned worker.
func (s Status) RequiresWorker() bool {
	switch s {
	case Assigned, InProgress, Editing, Delivered, Revision, Approved, Paid, Completed:
		return true
	default:
		return false
	}
}

// Transition returns the status after moving to target.
// Moving to the current status is a no-op and succeeds. Any move not listed
// in the transition table fails with an InvalidTransitionError carrying the
// current status, the attempted target and the permitted set.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s == target {
		return s, nil
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target, Allowed: s.AllowedNext()}
	}
	return target, nil
}

// InvalidTransitionError reports a status move rejected by the transition table.
// It carries the current status, the attempted target, and the permitted set
// so callers can render an actionable message.
type InvalidTransitionError struct {
	From    Status
	To      Status
	Allowed []Status
}

func (e *InvalidTransitionError) Error() string {
	names := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		names[i] = s.String()
	}
	return fmt.Sprintf("invalid transition: %s -> %s (allowed: %s)",
		e.From, e.To, strings.Join(names, ", "))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
