package payout

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// Method identifies the withdrawal channel a worker chose for a payout.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// Card pays out to a bank card.
	Card

	// BankTransfer pays out via wire transfer.
	BankTransfer

	// EWallet pays out to an electronic wallet.
	EWallet
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "unknown",
		Card:          "card",
		BankTransfer:  "bank_transfer",
		EWallet:       "ewallet",
	}
}

// MethodFromString parses a payout method name received from an external boundary.
func MethodFromString(s string) (Method, error) {
	for method, name := range getMethodStrings() {
		if name == s && method != MethodUnknown {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payout method is invalid",
		fmt.Errorf("%q is not a valid payout method", s),
	)
}

// Validate checks if the Method is a member of the closed method set.
func (m Method) Validate() error {
	if m <= MethodUnknown || m > EWallet {
		return errs.NewValueIsInvalidErrorWithCause(
			"payout method is invalid",
			fmt.Errorf("%d is not a valid payout method", m),
		)
	}
	return nil
}

// String returns the wire name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
