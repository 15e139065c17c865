package commands

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a restaurant declining an incoming order.
// The reason is optional and travels to the platform on the audit event.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject an order.
// Validates that the order ID is positive.
func NewRejectOrderCommand(orderID int64, reason string) (RejectOrderCommand, error) {
	rejectCommand := RejectOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := rejectCommand.setOrderID(orderID); err != nil {
		return RejectOrderCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOrderCommandIsNotConstructed if validation fails.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the internal identifier of the order to reject.
func (c RejectOrderCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the restaurant's explanation for the rejection.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
