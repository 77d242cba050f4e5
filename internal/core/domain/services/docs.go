// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the work-order system. It implements
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - EarningsCalculator: A domain service computing worker payouts from order volume and tier rates
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
