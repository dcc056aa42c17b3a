package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/station"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"
)

var (
	ErrCompleteBypassedProcessCommandIsNotConstructed = errors.New(
		"CompleteBypassedProcessCommand must be created via NewCompleteBypassedProcessCommand constructor",
	)
)

// CompleteBypassedProcessCommand represents a worker finishing a station
// whose bypass request was approved. It carries the bypass reference and the
// re-verified item rows alongside the completion notes, matching the
// bypass-specific completion contract.
type CompleteBypassedProcessCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	station         station.Station
	bypassRequestID kernel.UUID
	notes           string
	rows            []services.VerificationRow

	guard guard.ConstructorGuard
}

// NewCompleteBypassedProcessCommand creates a command to finish a station
// through an approved bypass. Validates the order and bypass request
// identifiers and the station; notes are optional free text.
func NewCompleteBypassedProcessCommand(
	orderID kernel.UUID,
	st station.Station,
	bypassRequestID kernel.UUID,
	notes string,
	rows []services.VerificationRow,
) (CompleteBypassedProcessCommand, error) {
	cmd := CompleteBypassedProcessCommand{
		notes: strings.TrimSpace(notes),
		rows:  append([]services.VerificationRow(nil), rows...),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStation(st),
		cmd.setBypassRequestID(bypassRequestID),
	); err != nil {
		return CompleteBypassedProcessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteBypassedProcessCommandIsNotConstructed if validation fails.
func (c CompleteBypassedProcessCommand) Validate() error {
	return c.guard.Validate(ErrCompleteBypassedProcessCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompleteBypassedProcessCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Station returns the station being completed.
func (c CompleteBypassedProcessCommand) Station() station.Station {
	return c.station
}

// BypassRequestID returns the approved bypass the completion rides on.
func (c CompleteBypassedProcessCommand) BypassRequestID() kernel.UUID {
	return c.bypassRequestID
}

// Notes returns the worker's trimmed completion remark (may be empty).
func (c CompleteBypassedProcessCommand) Notes() string {
	return c.notes
}

// Rows returns the re-verified item rows as entered by the worker.
func (c CompleteBypassedProcessCommand) Rows() []services.VerificationRow {
	return append([]services.VerificationRow(nil), c.rows...)
}

func (c *CompleteBypassedProcessCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteBypassedProcessCommand) setStation(st station.Station) error {
	if err := st.Validate(); err != nil {
		return err
	}

	c.station = st
	return nil
}

func (c *CompleteBypassedProcessCommand) setBypassRequestID(bypassRequestID kernel.UUID) error {
	if err := bypassRequestID.Validate(); err != nil {
		return err
	}

	c.bypassRequestID = bypassRequestID
	return nil
}
