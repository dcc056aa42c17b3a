// Package services provides domain services that implement business
// operations not naturally belonging to a single aggregate root.
//
// The package includes:
//   - VerificationSheet: A pure transform from worker-entered verification
//     rows to recorded items, with mismatch detection against the order's
//     original item list
//
// Domain services stay free of infrastructure concerns and side effects,
// following Domain-Driven Design principles.
package services
