package order

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

var (
	// ErrBypassRequestIsNotConstructed is returned when a BypassRequest instance
	// was not created through NewBypassRequest or RestoreBypassRequest.
	ErrBypassRequestIsNotConstructed = errors.New(
		"BypassRequest must be created via NewBypassRequest or RestoreBypassRequest constructor",
	)

	// ErrReasonIsRequired is returned when a bypass request is created with an
	// empty reason. The reason is validated before anything is persisted.
	ErrReasonIsRequired = errors.New("bypass reason is required")
)

// BypassRequest is an admin-approved exception escalated by a worker when
// verification counts mismatch the original order. It belongs to exactly one
// work process pass.
//
// A request is created in pending status and resolved exactly once by an
// admin (approve or reject); the worker side only reads the resulting status.
// While pending it blocks all further worker actions at its station.
type BypassRequest struct {
	// id is the unique identifier of the request
	id kernel.UUID

	// reason is the worker's free-text justification (never empty)
	reason string

	// status is the resolution state (pending, approved, rejected)
	status BypassStatus

	// adminNote optionally carries the resolving admin's remark
	adminNote *string

	// requestedAt is when the worker escalated the mismatch
	requestedAt time.Time

	// isConstructed ensures the request was created via a constructor
	isConstructed bool
}

// NewBypassRequest creates a pending bypass request.
//
// The reason is trimmed and must be non-empty; an empty reason fails with
// ErrReasonIsRequired before any persistence is touched.
func NewBypassRequest(id kernel.UUID, reason string, requestedAt time.Time) (*BypassRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonIsRequired
	}

	return &BypassRequest{
		id:            id,
		reason:        reason,
		status:        BypassStatusPending,
		requestedAt:   requestedAt,
		isConstructed: true,
	}, nil
}

// RestoreBypassRequest reconstructs a bypass request from persistence.
// Unlike NewBypassRequest it accepts any valid status and an optional admin
// note, validating the restored state.
func RestoreBypassRequest(
	id kernel.UUID,
	reason string,
	status BypassStatus,
	adminNote *string,
	requestedAt time.Time,
) (*BypassRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonIsRequired
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &BypassRequest{
		id:            id,
		reason:        reason,
		status:        status,
		adminNote:     adminNote,
		requestedAt:   requestedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the request was created through a constructor.
func (b *BypassRequest) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBypassRequestIsNotConstructed
	}
	return nil
}

// ID returns the unique identifier of the request.
func (b *BypassRequest) ID() kernel.UUID {
	return b.id
}

// Reason returns the worker's justification for the bypass.
func (b *BypassRequest) Reason() string {
	return b.reason
}

// Status returns the current resolution state.
func (b *BypassRequest) Status() BypassStatus {
	return b.status
}

// AdminNote returns the resolving admin's remark.
// Returns nil while the request is pending or when none was given.
func (b *BypassRequest) AdminNote() *string {
	return b.adminNote
}

// RequestedAt returns when the worker escalated the mismatch.
func (b *BypassRequest) RequestedAt() time.Time {
	return b.requestedAt
}

// Approve resolves the request in the worker's favor: the station may
// complete despite the original mismatch. Only a pending request can be
// approved.
func (b *BypassRequest) Approve(adminNote string) error {
	newStatus, err := b.status.Approve()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.setAdminNote(adminNote)
	return nil
}

// Reject resolves the request against the worker: the station must run a
// fresh verification pass. Only a pending request can be rejected.
func (b *BypassRequest) Reject(adminNote string) error {
	newStatus, err := b.status.Reject()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.setAdminNote(adminNote)
	return nil
}

func (b *BypassRequest) setAdminNote(adminNote string) {
	adminNote = strings.TrimSpace(adminNote)
	if adminNote == "" {
		return
	}
	b.adminNote = &adminNote
}
