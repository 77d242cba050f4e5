package worker

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// ApprovalStatus represents a worker's standing on the platform. Only
// approved workers may take orders and withdraw earnings.
type ApprovalStatus int

const (
	// ApprovalUnknown represents an invalid or undefined status.
	ApprovalUnknown ApprovalStatus = iota

	// PendingApproval is the initial status of a registered worker.
	PendingApproval

	// Approved indicates the worker passed review and is active.
	Approved

	// Suspended indicates the worker was deactivated by an administrator.
	Suspended
)

func getApprovalStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalUnknown: "unknown",
		PendingApproval: "pending_approval",
		Approved:        "approved",
		Suspended:       "suspended",
	}
}

// ApprovalStatusFromString parses an approval status name from an external boundary.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	for status, name := range getApprovalStrings() {
		if name == s && status != ApprovalUnknown {
			return status, nil
		}
	}
	return ApprovalUnknown, errs.NewValueIsInvalidErrorWithCause(
		"approval status is invalid",
		fmt.Errorf("%q is not a valid approval status", s),
	)
}

// Validate checks if the ApprovalStatus is a member of the closed set.
func (s ApprovalStatus) Validate() error {
	if s <= ApprovalUnknown || s > Suspended {
		return errs.NewValueIsInvalidErrorWithCause(
			"approval status is invalid",
			fmt.Errorf("%d is not a valid approval status", s),
		)
	}
	return nil
}

// String returns the wire name of the status.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStrings()[s]; ok {
		return str
	}
	return "unknown"
}
