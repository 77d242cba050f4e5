package ports

import (
	"context"
	"fmt"

	"workorders/internal/core/domain/model/payout"
)

// ProcessorError reports a payment processor failure. Processing errors are
// retryable: the payout request returns to approved and keeps its
// reservation.
type ProcessorError struct {
	StatusCode int
	Message    string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("payment processor error (status %d): %s", e.StatusCode, e.Message)
}

// PaymentProcessor is the gateway to the external payment provider.
type PaymentProcessor interface {
	// ProcessPayout executes the payout and returns the provider's payment
	// reference. The request is already in processing status when this is
	// called; any error leaves the money reserved for a retry.
	ProcessPayout(ctx context.Context, request *payout.PayoutRequest) (string, error)
}
