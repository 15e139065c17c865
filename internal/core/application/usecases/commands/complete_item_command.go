package commands

import (
	"errors"

	"pos/internal/pkg/guard"
)

var (
	ErrCompleteItemCommandIsNotConstructed = errors.New(
		"CompleteItemCommand must be created via NewCompleteItemCommand constructor",
	)
	ErrItemIDIsInvalid = errors.New("item ID must be greater than 0")
)

// CompleteItemCommand represents kitchen staff finishing one line item of an
// order.
type CompleteItemCommand struct { //nolint:recvcheck //using for validation
	itemID int64

	guard guard.ConstructorGuard
}

// NewCompleteItemCommand creates a command to complete a single item.
// Validates that the item ID is positive.
func NewCompleteItemCommand(itemID int64) (CompleteItemCommand, error) {
	itemCommand := CompleteItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := itemCommand.setItemID(itemID); err != nil {
		return CompleteItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteItemCommandIsNotConstructed if validation fails.
func (c CompleteItemCommand) Validate() error {
	return c.guard.Validate(ErrCompleteItemCommandIsNotConstructed)
}

// ItemID returns the internal identifier of the item to complete.
func (c CompleteItemCommand) ItemID() int64 {
	return c.itemID
}

func (c *CompleteItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return ErrItemIDIsInvalid
	}

	c.itemID = itemID
	return nil
}
