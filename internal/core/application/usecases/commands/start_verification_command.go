package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/station"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"
)

var (
	ErrStartVerificationCommandIsNotConstructed = errors.New(
		"StartVerificationCommand must be created via NewStartVerificationCommand constructor",
	)
)

// StartVerificationCommand represents a worker submitting the verification
// sheet at a station: the item counts they found, to be checked against the
// order's original item list before processing begins.
//
// Example:
//
//	cmd, err := NewStartVerificationCommand(orderID, employeeID, station.Washing,
//	    []services.VerificationRow{{Label: "Shirt", Quantity: "3"}})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewStartVerificationCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrQuantityMismatch) {
//	    // surface the bypass workflow to the worker
//	}
type StartVerificationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	employeeID kernel.UUID
	station    station.Station
	rows       []services.VerificationRow

	guard guard.ConstructorGuard
}

// NewStartVerificationCommand creates a command to submit a verification pass.
// Validates that the order and employee identifiers and the station are
// valid. Rows are not validated here: incomplete rows are dropped and
// mismatches detected by the verification sheet during handling.
func NewStartVerificationCommand(
	orderID kernel.UUID,
	employeeID kernel.UUID,
	st station.Station,
	rows []services.VerificationRow,
) (StartVerificationCommand, error) {
	cmd := StartVerificationCommand{
		rows:  append([]services.VerificationRow(nil), rows...),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmployeeID(employeeID),
		cmd.setStation(st),
	); err != nil {
		return StartVerificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartVerificationCommandIsNotConstructed if validation fails.
func (c StartVerificationCommand) Validate() error {
	return c.guard.Validate(ErrStartVerificationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being verified.
func (c StartVerificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the worker submitting the verification.
func (c StartVerificationCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Station returns the station the verification belongs to.
func (c StartVerificationCommand) Station() station.Station {
	return c.station
}

// Rows returns the verification sheet rows as entered by the worker.
func (c StartVerificationCommand) Rows() []services.VerificationRow {
	return append([]services.VerificationRow(nil), c.rows...)
}

func (c *StartVerificationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartVerificationCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *StartVerificationCommand) setStation(st station.Station) error {
	if err := st.Validate(); err != nil {
		return err
	}

	c.station = st
	return nil
}
