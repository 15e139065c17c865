package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteItemCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCompleteItemCommand(3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cmd.ItemID())
}

func TestNewCompleteItemCommand_InvalidItemID(t *testing.T) {
	_, err := commands.NewCompleteItemCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemIDIsInvalid)
}
