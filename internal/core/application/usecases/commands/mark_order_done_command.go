package commands

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrMarkOrderDoneCommandIsNotConstructed = errors.New(
	"MarkOrderDoneCommand must be created via NewMarkOrderDoneCommand constructor",
)

// MarkOrderDoneCommand represents a restaurant declaring an order ready for
// pickup or delivery.
type MarkOrderDoneCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkOrderDoneCommand creates a command to complete an order.
// Validates that the order ID is positive.
func NewMarkOrderDoneCommand(orderID int64) (MarkOrderDoneCommand, error) {
	doneCommand := MarkOrderDoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := doneCommand.setOrderID(orderID); err != nil {
		return MarkOrderDoneCommand{}, err
	}

	return doneCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkOrderDoneCommandIsNotConstructed if validation fails.
func (c MarkOrderDoneCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDoneCommandIsNotConstructed)
}

// OrderID returns the internal identifier of the order to complete.
func (c MarkOrderDoneCommand) OrderID() int64 {
	return c.orderID
}

func (c *MarkOrderDoneCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
