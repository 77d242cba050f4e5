package ports

import (
	"context"

	"workorders/internal/core/domain/model/worker"
)

// TierRepository defines the persistence contract for the piece-rate schedule.
// Tiers are reference data: seeded at startup, read-only afterwards.
type TierRepository interface {
	// GetAll retrieves the full schedule ordered by tier level.
	GetAll(ctx context.Context) (worker.Schedule, error)

	// Seed inserts the schedule if the table is empty. Existing rows are
	// left untouched.
	Seed(ctx context.Context, schedule worker.Schedule) error
}
