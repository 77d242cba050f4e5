// Package kernel provides core domain primitives shared by every aggregate
// in the work-order settlement system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison capabilities
//   - Money: a non-negative monetary amount with two-decimal precision
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
