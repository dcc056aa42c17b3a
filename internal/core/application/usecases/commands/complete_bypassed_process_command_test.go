package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/station"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteBypassedProcessCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	bypassRequestID := kernel.NewUUID()
	rows := mismatchedRows()

	cmd, err := commands.NewCompleteBypassedProcessCommand(
		orderID, station.Washing, bypassRequestID, " shirt count approved ", rows)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, station.Washing, cmd.Station())
	assert.Equal(t, bypassRequestID, cmd.BypassRequestID())
	assert.Equal(t, "shirt count approved", cmd.Notes())
	assert.Equal(t, rows, cmd.Rows())
}

func TestNewCompleteBypassedProcessCommand_InvalidBypassRequestID(t *testing.T) {
	_, err := commands.NewCompleteBypassedProcessCommand(
		kernel.NewUUID(), station.Washing, kernel.UUID{}, "", mismatchedRows())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCompleteBypassedProcessCommand_InvalidStation(t *testing.T) {
	_, err := commands.NewCompleteBypassedProcessCommand(
		kernel.NewUUID(), station.Unknown, kernel.NewUUID(), "", mismatchedRows())
	require.Error(t, err)
}
