package tierrepo

import (
	"context"

	"workorders/internal/core/domain/model/worker"

	"gorm.io/gorm"
)

// GormTierRepository implements TierRepository using GORM.
type GormTierRepository struct {
	db *gorm.DB
}

// NewGormTierRepository creates a new GORM tier repository.
func NewGormTierRepository(db *gorm.DB) *GormTierRepository {
	return &GormTierRepository{db: db}
}

// GetAll retrieves the full schedule ordered by tier level. The schedule
// invariant (consecutive levels starting at 1) is re-checked on load.
func (r *GormTierRepository) GetAll(ctx context.Context) (worker.Schedule, error) {
	var dtos []TierDTO
	if err := r.db.WithContext(ctx).Order("level ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	schedule := make(worker.Schedule, 0, len(dtos))
	for _, dto := range dtos {
		tier, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, tier)
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	return schedule, nil
}

// Seed inserts the schedule if the table is empty. Existing rows are left
// untouched so a restart never overwrites live reference data.
func (r *GormTierRepository) Seed(ctx context.Context, schedule worker.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&TierDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	dtos := make([]TierDTO, 0, len(schedule))
	for _, tier := range schedule {
		dtos = append(dtos, fromDomain(tier))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
