package bid

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// Status represents the lifecycle state of a bid. A bid starts pending and
// terminates in accepted or rejected; accepting one bid on an order rejects
// every other pending bid on it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the bid is competing for the order.
	Pending

	// Accepted indicates the bid won the order. At most one bid per order
	// ever holds this status.
	Accepted

	// Rejected indicates the bid lost, either explicitly or because another
	// bid on the same order was accepted.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
	}
}

// StatusFromString parses a bid status name received from an external boundary.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"bid status is invalid",
		fmt.Errorf("%q is not a valid bid status", s),
	)
}

// Validate checks if the Status is a member of the closed status set.
func (s Status) Validate() error {
	if s <= Unknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"bid status is invalid",
			fmt.Errorf("%d is not a valid bid status", s),
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
