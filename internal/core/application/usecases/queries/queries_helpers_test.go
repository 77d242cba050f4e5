package queries_test

import (
	"workorders/internal/core/domain/model/kernel"
)

// mockAggregateTracker is a no-op tracker: query tests only need the
// repositories to persist fixtures, not aggregate tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
