package payout

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// Status represents the lifecycle state of a payout request.
//
// State transitions:
//
//	pending ──> approved ──> processing ──> completed
//	   │            │             │
//	   │            │             └──> approved (processor failure, retry)
//	   └────────────┴──> rejected
//
// completed and rejected are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the request awaits admin review.
	// The requested amount is already reserved from the worker's balance.
	Pending

	// Approved indicates an administrator cleared the request for processing.
	Approved

	// Processing indicates the request was handed to the payment processor.
	Processing

	// Completed is a terminal status: the processor confirmed the payout.
	Completed

	// Rejected is a terminal status: the request was declined and the
	// reserved amount was credited back to the worker.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Approved:   "approved",
		Processing: "processing",
		Completed:  "completed",
		Rejected:   "rejected",
	}
}

// StatusFromString parses a payout status name received from an external boundary.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"payout status is invalid",
		fmt.Errorf("%q is not a valid payout status", s),
	)
}

// Validate checks if the Status is a member of the closed status set.
func (s Status) Validate() error {
	if s <= Unknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"payout status is invalid",
			fmt.Errorf("%d is not a valid payout status", s),
		)
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}
