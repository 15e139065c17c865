package commands

import (
	"errors"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrCancelOrderByReferenceCommandIsNotConstructed = errors.New(
	"CancelOrderByReferenceCommand must be created via NewCancelOrderByReferenceCommand constructor",
)

// CancelOrderByReferenceCommand represents a cancellation pushed by the
// ordering platform, addressed by the platform's own order reference. The raw
// webhook payload travels along as event metadata so the audit trail keeps
// whatever context the platform supplied.
type CancelOrderByReferenceCommand struct { //nolint:recvcheck //using for validation
	externalReference string
	payload           order.Metadata

	guard guard.ConstructorGuard
}

// NewCancelOrderByReferenceCommand creates a command to cancel an order on
// the platform's behalf. Validates that the external reference is present.
func NewCancelOrderByReferenceCommand(
	externalReference string,
	payload order.Metadata,
) (CancelOrderByReferenceCommand, error) {
	cancelCommand := CancelOrderByReferenceCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setExternalReference(externalReference); err != nil {
		return CancelOrderByReferenceCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderByReferenceCommandIsNotConstructed if validation fails.
func (c CancelOrderByReferenceCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderByReferenceCommandIsNotConstructed)
}

// ExternalReference returns the platform reference of the order to cancel.
func (c CancelOrderByReferenceCommand) ExternalReference() string {
	return c.externalReference
}

// Payload returns the raw webhook payload recorded as event metadata.
func (c CancelOrderByReferenceCommand) Payload() order.Metadata {
	return c.payload
}

func (c *CancelOrderByReferenceCommand) setExternalReference(externalReference string) error {
	if externalReference == "" {
		return ErrExternalReferenceIsRequired
	}

	c.externalReference = externalReference
	return nil
}
