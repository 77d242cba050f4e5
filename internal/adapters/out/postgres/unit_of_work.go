// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. The Unit of Work maintains a list of aggregates affected by
// a business transaction and coordinates writing out changes and resolving
// concurrency problems.
//
// Usage pattern:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// goroutines must use separate instances. Row-level locking (GetForUpdate)
// and the conditional atomic updates in the repositories cover the
// high-contention paths: bid acceptance, earnings accrual and balance
// reservation.
package postgres

import (
	"context"

	"workorders/internal/adapters/out/postgres/bidrepo"
	"workorders/internal/adapters/out/postgres/orderrepo"
	"workorders/internal/adapters/out/postgres/payoutrepo"
	"workorders/internal/adapters/out/postgres/tierrepo"
	"workorders/internal/adapters/out/postgres/workerrepo"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. The factory ensures each business operation gets a fresh unit
// of work instance with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all created
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Implements the Unit of Work pattern using
// GORM's transaction capabilities to ensure data consistency and proper
// rollback handling.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides access to order persistence operations within the
// unit of work. Operations execute within the current transaction if one is
// active, otherwise they use the main database connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// BidRepository provides access to bid persistence operations within the
// unit of work.
func (uow *GormUnitOfWork) BidRepository() ports.BidRepository {
	return bidrepo.NewGormBidRepository(uow.conn(), uow)
}

// WorkerRepository provides access to worker progress persistence operations
// within the unit of work.
func (uow *GormUnitOfWork) WorkerRepository() ports.WorkerRepository {
	return workerrepo.NewGormWorkerRepository(uow.conn(), uow)
}

// PayoutRepository provides access to payout request persistence operations
// within the unit of work.
func (uow *GormUnitOfWork) PayoutRepository() ports.PayoutRepository {
	return payoutrepo.NewGormPayoutRepository(uow.conn(), uow)
}

// TierRepository provides access to the piece-rate schedule within the unit
// of work.
func (uow *GormUnitOfWork) TierRepository() ports.TierRepository {
	return tierrepo.NewGormTierRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call this when aggregates are added or
// updated, enabling post-transaction processing such as domain event
// publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
