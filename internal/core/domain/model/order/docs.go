// Package order provides domain entities and business logic for laundry order
// management. It implements the Order aggregate root with its immutable item
// list, the work process records accumulated at each station, and the bypass
// requests escalated when verification counts mismatch.
//
// The package includes:
//   - Order: The aggregate root that owns items, work processes, and bypass requests
//   - OrderItem: One immutable line of the placed order, the verification baseline
//   - WorkProcess: The record of one worker's pass through one station
//   - BypassRequest: An admin-approved exception for a quantity mismatch
//   - StationState: The derived per-station workflow state
//
// Key business rules:
//   - Order items are immutable once the order is placed
//   - At most one open work process pass exists per station; a rejected bypass
//     closes a pass and permits a fresh verification pass
//   - A pending bypass request blocks all worker actions at its station
//   - An approved bypass permits completion despite the original mismatch,
//     but only through the bypass-specific completion path
//   - The workflow state is never persisted; it is derived from the order
//     snapshot on every evaluation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
