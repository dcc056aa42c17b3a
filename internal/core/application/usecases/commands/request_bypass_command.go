package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/station"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"
)

var (
	ErrRequestBypassCommandIsNotConstructed = errors.New(
		"RequestBypassCommand must be created via NewRequestBypassCommand constructor",
	)
)

// RequestBypassCommand represents a worker escalating a verification mismatch
// to an admin: the mismatched counts plus a free-text reason. The reason is
// validated locally at construction, before any transaction is opened.
//
// Example:
//
//	cmd, err := NewRequestBypassCommand(orderID, employeeID, station.Washing,
//	    "extra item found", rows)
//	if errors.Is(err, order.ErrReasonIsRequired) {
//	    // show the inline validation message, nothing was submitted
//	}
type RequestBypassCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	employeeID kernel.UUID
	station    station.Station
	reason     string
	rows       []services.VerificationRow

	guard guard.ConstructorGuard
}

// NewRequestBypassCommand creates a command to escalate a mismatch.
// Validates the identifiers and the station, and requires a non-empty reason
// after trimming (order.ErrReasonIsRequired otherwise).
func NewRequestBypassCommand(
	orderID kernel.UUID,
	employeeID kernel.UUID,
	st station.Station,
	reason string,
	rows []services.VerificationRow,
) (RequestBypassCommand, error) {
	cmd := RequestBypassCommand{
		rows:  append([]services.VerificationRow(nil), rows...),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmployeeID(employeeID),
		cmd.setStation(st),
		cmd.setReason(reason),
	); err != nil {
		return RequestBypassCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestBypassCommandIsNotConstructed if validation fails.
func (c RequestBypassCommand) Validate() error {
	return c.guard.Validate(ErrRequestBypassCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being escalated.
func (c RequestBypassCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the worker requesting the bypass.
func (c RequestBypassCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Station returns the station the bypass belongs to.
func (c RequestBypassCommand) Station() station.Station {
	return c.station
}

// Reason returns the worker's trimmed justification for the bypass.
func (c RequestBypassCommand) Reason() string {
	return c.reason
}

// Rows returns the mismatched verification rows as entered by the worker.
func (c RequestBypassCommand) Rows() []services.VerificationRow {
	return append([]services.VerificationRow(nil), c.rows...)
}

func (c *RequestBypassCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestBypassCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *RequestBypassCommand) setStation(st station.Station) error {
	if err := st.Validate(); err != nil {
		return err
	}

	c.station = st
	return nil
}

func (c *RequestBypassCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return order.ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
