package order

import (
	"fmt"

	"laundry/internal/core/domain/model/station"
	"laundry/internal/pkg/errs"
)

// StationState is the derived workflow state of one order at one station.
// It is never persisted: the state is always recomputed from the order's
// work processes and their bypass requests, so a successful mutation followed
// by a re-read can never leave the workflow in an inconsistent state.
//
// Derivation precedence (see DeriveStationState):
//
//	no order loaded                     -> Loading
//	no work process for the station     -> Verify
//	bypass request PENDING              -> BypassPending
//	bypass request REJECTED             -> BypassRejected
//	completedAt set                     -> Completed
//	otherwise                           -> Process
//
// An APPROVED bypass deliberately has no branch of its own: an approved but
// uncompleted pass derives Process (completion is legal despite the original
// mismatch), and once completed it derives Completed like any other pass.
type StationState int

const (
	// StateLoading indicates the order has not been loaded.
	// All actions are disabled.
	StateLoading StationState = iota

	// StateVerify indicates no work process exists for the station yet.
	// The worker may submit verification or, after a mismatch, request a bypass.
	StateVerify

	// StateProcess indicates a verification pass exists and processing may be
	// completed. This state also covers passes whose bypass was approved.
	StateProcess

	// StateBypassPending indicates a bypass request awaits an admin decision.
	// All mutating actions at the station are disabled.
	StateBypassPending

	// StateBypassRejected indicates the bypass was rejected and the worker
	// must run a fresh verification pass.
	StateBypassRejected

	// StateCompleted indicates the station has finished its pass.
	// This is the final state for the station.
	StateCompleted
)

// getStationStateStrings returns a map of StationState values to their string representations.
func getStationStateStrings() map[StationState]string {
	return map[StationState]string{
		StateLoading:        "loading",
		StateVerify:         "verify",
		StateProcess:        "process",
		StateBypassPending:  "bypass_pending",
		StateBypassRejected: "bypass_rejected",
		StateCompleted:      "completed",
	}
}

// Validate checks if the StationState value is one of the six defined states.
func (s StationState) Validate() error {
	if _, ok := getStationStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"station state is invalid",
			fmt.Errorf("%d is not a valid station state", s),
		)
	}
	return nil
}

// String returns the snake_case name of the state as used in API responses.
// Returns "loading" for StateLoading and invalid values never occur from
// derivation; unknown values format as "unknown". Implements fmt.Stringer.
func (s StationState) String() string {
	if str, ok := getStationStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanSubmitVerification reports whether submitting a verification pass is
// permitted. Verification is open to a fresh station and re-opens after a
// rejected bypass.
func (s StationState) CanSubmitVerification() bool {
	return s == StateVerify || s == StateBypassRejected
}

// CanRequestBypass reports whether requesting a bypass is permitted.
// A bypass can only originate from a failed verification attempt, so the
// gate mirrors CanSubmitVerification.
func (s StationState) CanRequestBypass() bool {
	return s == StateVerify || s == StateBypassRejected
}

// CanComplete reports whether submitting completion is permitted.
func (s StationState) CanComplete() bool {
	return s == StateProcess
}

// DeriveStationState computes the workflow state of the given station from an
// order snapshot. It is a pure function: deriving twice from the same
// unchanged snapshot yields the same state. Exactly one state is active at a
// time, and the action gates on the result determine which of
// {submit verification, request bypass, submit completion} are enabled.
//
// A nil order derives StateLoading. Otherwise the latest work process pass
// for the station (if any) and its bypass request decide the state per the
// precedence table documented on StationState.
func DeriveStationState(o *Order, st station.Station) StationState {
	if o == nil {
		return StateLoading
	}

	wp := o.FindWorkProcess(st)
	if wp == nil {
		return StateVerify
	}

	var bypassStatus BypassStatus
	hasBypass := wp.Bypass() != nil
	if hasBypass {
		bypassStatus = wp.Bypass().Status()
	}

	return DerivePassState(hasBypass, bypassStatus, wp.IsCompleted())
}

// DerivePassState computes the state of an existing pass from its bypass
// status and completion flag. Split out of DeriveStationState so read models
// can derive states from raw rows without restoring the aggregate.
func DerivePassState(hasBypass bool, bypassStatus BypassStatus, completed bool) StationState {
	if hasBypass {
		switch bypassStatus {
		case BypassStatusPending:
			return StateBypassPending
		case BypassStatusRejected:
			return StateBypassRejected
		case BypassStatusApproved, BypassStatusUnknown:
			// approved falls through to the completion check below
		}
	}

	if completed {
		return StateCompleted
	}

	return StateProcess
}
