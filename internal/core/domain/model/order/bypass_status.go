package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// BypassStatus represents the resolution state of a bypass request.
// It implements a state machine with defined transitions: a request starts
// pending and is resolved exactly once by an admin.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// Approved and Rejected are final states. Workers never transition a bypass
// request themselves; they only read the resulting status.
type BypassStatus int

const (
	// BypassStatusUnknown represents an invalid or undefined bypass status.
	// This value (0) helps catch uninitialized BypassStatus values.
	BypassStatusUnknown BypassStatus = iota

	// BypassStatusPending indicates the request awaits an admin decision.
	// A pending bypass blocks all worker actions at its station.
	BypassStatusPending

	// BypassStatusApproved indicates an admin approved the exception.
	// The station may complete despite the original quantity mismatch.
	BypassStatusApproved

	// BypassStatusRejected indicates an admin rejected the exception.
	// The worker must run a fresh verification pass at the station.
	BypassStatusRejected
)

// getBypassStatusStrings returns a map of BypassStatus values to their string representations.
func getBypassStatusStrings() map[BypassStatus]string {
	return map[BypassStatus]string{
		BypassStatusUnknown:  "UNKNOWN",
		BypassStatusPending:  "PENDING",
		BypassStatusApproved: "APPROVED",
		BypassStatusRejected: "REJECTED",
	}
}

// getValidBypassStatusStrings returns a map of only valid BypassStatus values.
func getValidBypassStatusStrings() map[BypassStatus]string {
	//nolint:exhaustive // BypassStatusUnknown is intentionally excluded as it's invalid
	return map[BypassStatus]string{
		BypassStatusPending:  "PENDING",
		BypassStatusApproved: "APPROVED",
		BypassStatusRejected: "REJECTED",
	}
}

// Validate checks if the BypassStatus value is valid.
//
// Valid statuses are: BypassStatusPending, BypassStatusApproved,
// BypassStatusRejected. BypassStatusUnknown (0) and any other values are
// invalid.
func (s BypassStatus) Validate() error {
	if _, ok := getValidBypassStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"bypass status is invalid",
			fmt.Errorf("%d is not a valid bypass status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the bypass status.
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s BypassStatus) String() string {
	if str, ok := getBypassStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsResolved reports whether the status is a final one.
func (s BypassStatus) IsResolved() bool {
	return s == BypassStatusApproved || s == BypassStatusRejected
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
//
// Returns:
//   - (BypassStatusApproved, nil) on valid transition
//   - (0, error) if the status is not Pending
func (s BypassStatus) Approve() (BypassStatus, error) {
	if s != BypassStatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"bypass status is invalid",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}

	return BypassStatusApproved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Returns:
//   - (BypassStatusRejected, nil) on valid transition
//   - (0, error) if the status is not Pending
func (s BypassStatus) Reject() (BypassStatus, error) {
	if s != BypassStatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"bypass status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return BypassStatusRejected, nil
}
