package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(7, "customer called")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, "customer called", cmd.Reason())
}

func TestNewCancelOrderCommand_EmptyReasonAllowed(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(7, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Reason())
}

func TestNewCancelOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(0, "customer called")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
}
