package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order ID must be greater than 0")
)

// AcceptOrderCommand represents a restaurant's confirmation of an incoming
// order together with its preparation estimate.
//
// Example:
//
//	prepTime, _ := kernel.NewPrepTime(25)
//	cmd, err := NewAcceptOrderCommand(orderID, prepTime)
//	if err != nil {
//	    return fmt.Errorf("invalid accept request: %w", err)
//	}
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to accept order: %w", err)
//	}
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	prepTime kernel.PrepTime

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept an order.
// Validates that the order ID is positive and the preparation estimate is a
// valid value object. Returns an error if any validation fails.
func NewAcceptOrderCommand(orderID int64, prepTime kernel.PrepTime) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setPrepTime(prepTime),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the internal identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() int64 {
	return c.orderID
}

// PrepTime returns the restaurant's preparation estimate.
func (c AcceptOrderCommand) PrepTime() kernel.PrepTime {
	return c.prepTime
}

func (c *AcceptOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setPrepTime(prepTime kernel.PrepTime) error {
	if err := prepTime.Validate(); err != nil {
		return err
	}

	c.prepTime = prepTime
	return nil
}
