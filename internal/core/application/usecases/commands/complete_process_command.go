package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/station"
	"laundry/internal/pkg/guard"
)

var (
	ErrCompleteProcessCommandIsNotConstructed = errors.New(
		"CompleteProcessCommand must be created via NewCompleteProcessCommand constructor",
	)
)

// CompleteProcessCommand represents a worker finishing a station through the
// standard completion path: the pass was opened by a matching verification
// and carries no approved bypass.
type CompleteProcessCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	station station.Station
	notes   string

	guard guard.ConstructorGuard
}

// NewCompleteProcessCommand creates a command to finish a station.
// Validates the order identifier and station; notes are optional free text.
func NewCompleteProcessCommand(
	orderID kernel.UUID,
	st station.Station,
	notes string,
) (CompleteProcessCommand, error) {
	cmd := CompleteProcessCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStation(st),
	); err != nil {
		return CompleteProcessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteProcessCommandIsNotConstructed if validation fails.
func (c CompleteProcessCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProcessCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompleteProcessCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Station returns the station being completed.
func (c CompleteProcessCommand) Station() station.Station {
	return c.station
}

// Notes returns the worker's trimmed completion remark (may be empty).
func (c CompleteProcessCommand) Notes() string {
	return c.notes
}

func (c *CompleteProcessCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteProcessCommand) setStation(st station.Station) error {
	if err := st.Validate(); err != nil {
		return err
	}

	c.station = st
	return nil
}
