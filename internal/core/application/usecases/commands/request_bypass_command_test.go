package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/station"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mismatchedRows() []services.VerificationRow {
	return []services.VerificationRow{
		{Label: "Shirt", Quantity: "2"},
		{Label: "Towel", Quantity: "2"},
	}
}

func TestNewRequestBypassCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	employeeID := kernel.NewUUID()

	cmd, err := commands.NewRequestBypassCommand(
		orderID, employeeID, station.Washing, "one shirt missing", mismatchedRows())
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, employeeID, cmd.EmployeeID())
	assert.Equal(t, station.Washing, cmd.Station())
	assert.Equal(t, "one shirt missing", cmd.Reason())
	assert.Equal(t, mismatchedRows(), cmd.Rows())
}

func TestNewRequestBypassCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewRequestBypassCommand(
		kernel.NewUUID(), kernel.NewUUID(), station.Washing, "", mismatchedRows())
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrReasonIsRequired)
}

func TestNewRequestBypassCommand_WhitespaceReason(t *testing.T) {
	_, err := commands.NewRequestBypassCommand(
		kernel.NewUUID(), kernel.NewUUID(), station.Washing, "   \t", mismatchedRows())
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrReasonIsRequired)
}

func TestNewRequestBypassCommand_InvalidStation(t *testing.T) {
	_, err := commands.NewRequestBypassCommand(
		kernel.NewUUID(), kernel.NewUUID(), station.Unknown, "one shirt missing", mismatchedRows())
	require.Error(t, err)
}

func TestNewRequestBypassCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRequestBypassCommand(
		kernel.UUID{}, kernel.NewUUID(), station.Washing, "one shirt missing", mismatchedRows())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
