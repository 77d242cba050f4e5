// Package worker contains the per-worker Progress aggregate and the
// EarningsTier piece-rate schedule.
//
// Progress tracks a worker's tier level, completed-order counters and
// available balance; EarningsTier is immutable reference data seeded once.
// Tier progression is milestone-gated: completing orders within the current
// tier unlocks the next one, raising the per-page rate the worker earns.
package worker
