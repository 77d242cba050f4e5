// Package order contains the Order aggregate and its lifecycle state machine.
//
// The aggregate enforces the full work-order workflow: bidding (pending),
// assignment, execution (in_progress/editing), delivery and review
// (delivered/revision/approved), and settlement (paid/completed), with
// cancellation available from every non-terminal stage the table permits.
//
// Status owns the closed transition table; Order layers the assignment and
// bookkeeping invariants on top of it. Both reject illegal moves with typed
// errors instead of silently correcting them.
package order
