package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrDelayOrderCommandIsNotConstructed = errors.New(
	"DelayOrderCommand must be created via NewDelayOrderCommand constructor",
)

// DelayOrderCommand represents a restaurant pushing back the readiness
// estimate of an order already in preparation. Delays may be issued
// repeatedly; each one replaces the previous estimate. The reason is
// optional.
type DelayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	prepTime kernel.PrepTime
	reason   string

	guard guard.ConstructorGuard
}

// NewDelayOrderCommand creates a command to delay an order.
// Validates that the order ID is positive and the new preparation estimate is
// a valid value object.
func NewDelayOrderCommand(orderID int64, prepTime kernel.PrepTime, reason string) (DelayOrderCommand, error) {
	delayCommand := DelayOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delayCommand.setOrderID(orderID),
		delayCommand.setPrepTime(prepTime),
	); err != nil {
		return DelayOrderCommand{}, err
	}

	return delayCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDelayOrderCommandIsNotConstructed if validation fails.
func (c DelayOrderCommand) Validate() error {
	return c.guard.Validate(ErrDelayOrderCommandIsNotConstructed)
}

// OrderID returns the internal identifier of the order to delay.
func (c DelayOrderCommand) OrderID() int64 {
	return c.orderID
}

// PrepTime returns the replacement preparation estimate.
func (c DelayOrderCommand) PrepTime() kernel.PrepTime {
	return c.prepTime
}

// Reason returns the restaurant's explanation for the delay.
func (c DelayOrderCommand) Reason() string {
	return c.reason
}

func (c *DelayOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *DelayOrderCommand) setPrepTime(prepTime kernel.PrepTime) error {
	if err := prepTime.Validate(); err != nil {
		return err
	}

	c.prepTime = prepTime
	return nil
}
