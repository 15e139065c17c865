package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItemSpecs() []commands.OrderItemSpec {
	price := 12.50
	return []commands.OrderItemSpec{
		{Name: "Margherita", Quantity: 2, UnitPrice: &price},
		{Name: "Tiramisu", Quantity: 1, UnitPrice: nil, Notes: "no cocoa"},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("ref-1001", "rest-42", "Jane Doe", "1 High St", validItemSpecs())
	require.NoError(t, err)
	assert.Equal(t, "ref-1001", cmd.ExternalReference())
	assert.Equal(t, "rest-42", cmd.RestaurantID())
	assert.Equal(t, "Jane Doe", cmd.CustomerName())
	assert.Equal(t, "1 High St", cmd.DeliveryAddress())
	assert.Len(t, cmd.Items(), 2)
}

func TestNewCreateOrderCommand_EmptyItemsAllowed(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("ref-1001", "rest-42", "Jane Doe", "1 High St", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Items())
}

func TestNewCreateOrderCommand_EmptyExternalReference(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", "rest-42", "Jane Doe", "1 High St", validItemSpecs())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrExternalReferenceIsRequired)
}

func TestNewCreateOrderCommand_InvalidItem(t *testing.T) {
	specs := []commands.OrderItemSpec{{Name: "Margherita", Quantity: 0}}
	_, err := commands.NewCreateOrderCommand("ref-1001", "rest-42", "Jane Doe", "1 High St", specs)
	require.Error(t, err)
}
