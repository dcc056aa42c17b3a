package order

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/station"
)

var (
	// ErrWorkProcessIsNotConstructed is returned when a WorkProcess instance was
	// not created through the Order aggregate or RestoreWorkProcess.
	ErrWorkProcessIsNotConstructed = errors.New(
		"WorkProcess must be created via the Order aggregate or RestoreWorkProcess constructor",
	)

	// ErrWorkProcessAlreadyCompleted is returned when completing a work process
	// that already has a completion timestamp.
	ErrWorkProcessAlreadyCompleted = errors.New("work process is already completed")

	// ErrWorkProcessBypassPending is returned when completing a work process
	// whose bypass request is still awaiting an admin decision.
	ErrWorkProcessBypassPending = errors.New("work process has a pending bypass request")
)

// RecordedItem is one line of the tally a worker counted during a pass:
// the resolved laundry item reference and the quantity found. A laundry item
// ID of 0 marks a label the worker entered that did not match the order's
// item catalog.
type RecordedItem struct {
	LaundryItemID int64
	Quantity      int
}

// WorkProcess is the record of one worker's pass through one station for one
// order. It is created when the worker's verification is accepted (or a
// bypass is requested) and mutated exactly once when the station finishes;
// work processes are never deleted.
//
// A pass may carry at most one BypassRequest. A rejected bypass closes the
// pass, permitting a fresh verification pass at the same station; the
// Order aggregate enforces that at most one open pass exists per station.
type WorkProcess struct {
	// id is the unique identifier of the pass
	id kernel.UUID

	// station is the processing stage this pass belongs to
	station station.Station

	// employeeID identifies the worker who ran the pass
	employeeID kernel.UUID

	// startedAt is when the verification was accepted
	startedAt time.Time

	// completedAt is when the station finished (nil while open)
	completedAt *time.Time

	// notes optionally carries the worker's free-text completion remark
	notes *string

	// recordedItems is the tally the worker counted during this pass
	recordedItems []RecordedItem

	// bypass is the exception escalated from this pass, if any
	bypass *BypassRequest

	// isConstructed ensures the pass was created via a constructor
	isConstructed bool
}

// newWorkProcess creates an open work process pass. It is package-private:
// passes are only created through the Order aggregate so the one-open-pass
// invariant stays enforced in one place.
func newWorkProcess(
	id kernel.UUID,
	st station.Station,
	employeeID kernel.UUID,
	recordedItems []RecordedItem,
	startedAt time.Time,
) (*WorkProcess, error) {
	if err := errors.Join(id.Validate(), st.Validate(), employeeID.Validate()); err != nil {
		return nil, err
	}

	return &WorkProcess{
		id:            id,
		station:       st,
		employeeID:    employeeID,
		startedAt:     startedAt,
		recordedItems: append([]RecordedItem(nil), recordedItems...),
		isConstructed: true,
	}, nil
}

// RestoreWorkProcess reconstructs a work process from persistence, including
// its completion state and bypass request.
func RestoreWorkProcess(
	id kernel.UUID,
	st station.Station,
	employeeID kernel.UUID,
	startedAt time.Time,
	completedAt *time.Time,
	notes *string,
	recordedItems []RecordedItem,
	bypass *BypassRequest,
) (*WorkProcess, error) {
	if err := errors.Join(id.Validate(), st.Validate(), employeeID.Validate()); err != nil {
		return nil, err
	}

	if bypass != nil {
		if err := bypass.Validate(); err != nil {
			return nil, err
		}
	}

	return &WorkProcess{
		id:            id,
		station:       st,
		employeeID:    employeeID,
		startedAt:     startedAt,
		completedAt:   completedAt,
		notes:         notes,
		recordedItems: append([]RecordedItem(nil), recordedItems...),
		bypass:        bypass,
		isConstructed: true,
	}, nil
}

// Validate ensures the work process was created through a constructor.
func (wp *WorkProcess) Validate() error {
	if wp == nil || !wp.isConstructed {
		return ErrWorkProcessIsNotConstructed
	}
	return nil
}

// ID returns the unique identifier of the pass.
func (wp *WorkProcess) ID() kernel.UUID {
	return wp.id
}

// Station returns the processing stage this pass belongs to.
func (wp *WorkProcess) Station() station.Station {
	return wp.station
}

// EmployeeID returns the worker who ran the pass.
func (wp *WorkProcess) EmployeeID() kernel.UUID {
	return wp.employeeID
}

// StartedAt returns when the verification was accepted.
func (wp *WorkProcess) StartedAt() time.Time {
	return wp.startedAt
}

// CompletedAt returns when the station finished, or nil while the pass is open.
func (wp *WorkProcess) CompletedAt() *time.Time {
	return wp.completedAt
}

// Notes returns the worker's completion remark, or nil when none was given.
func (wp *WorkProcess) Notes() *string {
	return wp.notes
}

// RecordedItems returns a copy of the tally counted during this pass.
func (wp *WorkProcess) RecordedItems() []RecordedItem {
	return append([]RecordedItem(nil), wp.recordedItems...)
}

// Bypass returns the bypass request escalated from this pass, or nil.
func (wp *WorkProcess) Bypass() *BypassRequest {
	return wp.bypass
}

// IsCompleted reports whether the pass has a completion timestamp.
func (wp *WorkProcess) IsCompleted() bool {
	return wp.completedAt != nil
}

// attachBypass links a bypass request to this pass.
// Callers (the Order aggregate) guarantee the pass carries no bypass yet.
func (wp *WorkProcess) attachBypass(bypass *BypassRequest) {
	wp.bypass = bypass
}

// complete closes the pass, setting the completion timestamp and optional
// notes. A pass can be completed at most once, and never while its bypass
// request is pending.
func (wp *WorkProcess) complete(notes string, completedAt time.Time) error {
	if wp.IsCompleted() {
		return ErrWorkProcessAlreadyCompleted
	}

	if wp.bypass != nil && wp.bypass.Status() == BypassStatusPending {
		return ErrWorkProcessBypassPending
	}

	wp.completedAt = &completedAt

	notes = strings.TrimSpace(notes)
	if notes != "" {
		wp.notes = &notes
	}

	return nil
}

// replaceRecordedItems overwrites the pass tally with the re-verified counts
// submitted through a bypassed completion.
func (wp *WorkProcess) replaceRecordedItems(items []RecordedItem) {
	wp.recordedItems = append([]RecordedItem(nil), items...)
}
