package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/station"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteProcessCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCompleteProcessCommand(orderID, station.Ironing, "  no issues ")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, station.Ironing, cmd.Station())
	assert.Equal(t, "no issues", cmd.Notes())
}

func TestNewCompleteProcessCommand_EmptyNotesAllowed(t *testing.T) {
	cmd, err := commands.NewCompleteProcessCommand(kernel.NewUUID(), station.Washing, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Notes())
}

func TestNewCompleteProcessCommand_InvalidStation(t *testing.T) {
	_, err := commands.NewCompleteProcessCommand(kernel.NewUUID(), station.Unknown, "")
	require.Error(t, err)
}

func TestNewCompleteProcessCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCompleteProcessCommand(kernel.UUID{}, station.Washing, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
