package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
)

// Event names carried on the notification stream.
const (
	EventOrderStatusChanged = "order.status_changed"
	EventOrderAssigned      = "order.assigned"
	EventBidPlaced          = "bid.placed"
	EventBidAccepted        = "bid.accepted"
	EventPayoutApproved     = "payout.approved"
	EventPayoutRejected     = "payout.rejected"
	EventPayoutCompleted    = "payout.completed"
)

// Event is a notification payload pushed to a user's live connections.
type Event struct {
	Name string         `json:"event"`
	Data map[string]any `json:"data,omitempty"`
}

// EventPublisher delivers events to a user's live notification connections.
//
// Publishing is best-effort: a user with no open connections simply misses
// the event, and delivery failures never fail the business operation that
// produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, recipientID kernel.UUID, event Event)
}
