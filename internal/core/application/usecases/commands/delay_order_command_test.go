package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelayOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewDelayOrderCommand(7, mustPrepTime(t, 45), "rush hour")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, 45, cmd.PrepTime().Minutes())
	assert.Equal(t, "rush hour", cmd.Reason())
}

func TestNewDelayOrderCommand_EmptyReasonAllowed(t *testing.T) {
	cmd, err := commands.NewDelayOrderCommand(7, mustPrepTime(t, 45), "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Reason())
}

func TestNewDelayOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewDelayOrderCommand(0, kernel.PrepTime{}, "rush hour")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
}
