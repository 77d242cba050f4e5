// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"workorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BidRepoFactory provides access to the bid repository within a transaction.
	BidRepoFactory interface {
		BidRepository() ports.BidRepository
	}

	// WorkerRepoFactory provides access to the worker repository within a transaction.
	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// PayoutRepoFactory provides access to the payout repository within a transaction.
	PayoutRepoFactory interface {
		PayoutRepository() ports.PayoutRepository
	}

	// TierRepoFactory provides access to the tier repository within a transaction.
	TierRepoFactory interface {
		TierRepository() ports.TierRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BiddingUoW manages transactions for the bid protocol. Acceptance
	// mutates the order, the winning bid and the losing bids in one
	// transaction, so all three repositories share it.
	BiddingUoW interface {
		TxManager
		OrderRepoFactory
		BidRepoFactory
		WorkerRepoFactory
	}

	// BiddingUoWFactory creates new bidding unit of work instances.
	BiddingUoWFactory interface {
		Create() BiddingUoW
	}

	// SettlementUoW manages transactions that credit worker earnings:
	// the order's counted flag, the worker's balance and tier counters,
	// and the rate schedule move together.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		WorkerRepoFactory
		TierRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// PayoutUoW manages transactions for withdrawal operations, which touch
	// payout requests and worker balances.
	PayoutUoW interface {
		TxManager
		WorkerRepoFactory
		PayoutRepoFactory
	}

	// PayoutUoWFactory creates new payout unit of work instances.
	PayoutUoWFactory interface {
		Create() PayoutUoW
	}

	// UoW manages transactions across all aggregates. Used by balance
	// reconciliation, which reads orders, payouts and tiers to rebuild a
	// worker's balance.
	UoW interface {
		TxManager
		OrderRepoFactory
		BidRepoFactory
		WorkerRepoFactory
		PayoutRepoFactory
		TierRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
