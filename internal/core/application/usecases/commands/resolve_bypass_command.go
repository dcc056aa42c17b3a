package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrResolveBypassCommandIsNotConstructed = errors.New(
		"ResolveBypassCommand must be created via NewResolveBypassCommand constructor",
	)
)

// ResolveBypassCommand represents an admin deciding a pending bypass request:
// approve (the station may complete despite the mismatch) or reject (the
// worker must run a fresh verification pass). An optional note explains the
// decision to the worker.
type ResolveBypassCommand struct { //nolint:recvcheck //using for validation
	bypassRequestID kernel.UUID
	approve         bool
	adminNote       string

	guard guard.ConstructorGuard
}

// NewResolveBypassCommand creates a command to resolve a bypass request.
// Validates the bypass request identifier; the note is optional and trimmed.
func NewResolveBypassCommand(
	bypassRequestID kernel.UUID,
	approve bool,
	adminNote string,
) (ResolveBypassCommand, error) {
	cmd := ResolveBypassCommand{
		approve:   approve,
		adminNote: strings.TrimSpace(adminNote),
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setBypassRequestID(bypassRequestID); err != nil {
		return ResolveBypassCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveBypassCommandIsNotConstructed if validation fails.
func (c ResolveBypassCommand) Validate() error {
	return c.guard.Validate(ErrResolveBypassCommandIsNotConstructed)
}

// BypassRequestID returns the identifier of the request being resolved.
func (c ResolveBypassCommand) BypassRequestID() kernel.UUID {
	return c.bypassRequestID
}

// Approve reports whether the decision is an approval.
func (c ResolveBypassCommand) Approve() bool {
	return c.approve
}

// AdminNote returns the admin's trimmed remark (may be empty).
func (c ResolveBypassCommand) AdminNote() string {
	return c.adminNote
}

func (c *ResolveBypassCommand) setBypassRequestID(bypassRequestID kernel.UUID) error {
	if err := bypassRequestID.Validate(); err != nil {
		return err
	}

	c.bypassRequestID = bypassRequestID
	return nil
}
