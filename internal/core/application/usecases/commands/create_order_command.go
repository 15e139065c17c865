package commands

import (
	"errors"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrExternalReferenceIsRequired = errors.New("external reference is required")
)

// OrderItemSpec describes one line of an incoming order before it becomes a
// domain item. Carried as plain data so the transport layer does not touch
// domain constructors.
type OrderItemSpec struct {
	Name      string
	Quantity  int
	UnitPrice *float64
	Notes     string
}

// CreateOrderCommand represents an incoming order submission from the ordering
// platform. Encapsulates the platform reference, customer details and the
// ordered items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ref-1001", "rest-42", "Jane Doe", "1 High St", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d registered (already existed: %v)", result.OrderID, result.AlreadyExists)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	externalReference string
	restaurantID      string
	customerName      string
	deliveryAddress   string
	items             []*order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an incoming order.
// Validates that the external reference is present and that every item spec
// produces a valid domain item; an empty item list is permitted because some
// platform payloads carry none. Returns an error if any validation fails.
func NewCreateOrderCommand(
	externalReference, restaurantID, customerName, deliveryAddress string,
	items []OrderItemSpec,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setExternalReference(externalReference),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.restaurantID = restaurantID
	orderCommand.customerName = customerName
	orderCommand.deliveryAddress = deliveryAddress

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ExternalReference returns the platform-assigned order reference.
func (c CreateOrderCommand) ExternalReference() string {
	return c.externalReference
}

// RestaurantID returns the identifier of the receiving restaurant.
func (c CreateOrderCommand) RestaurantID() string {
	return c.restaurantID
}

// CustomerName returns the ordering customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// DeliveryAddress returns the destination address, if any.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Items returns the validated domain items for the new order.
func (c CreateOrderCommand) Items() []*order.Item {
	return c.items
}

func (c *CreateOrderCommand) setExternalReference(externalReference string) error {
	if externalReference == "" {
		return ErrExternalReferenceIsRequired
	}

	c.externalReference = externalReference
	return nil
}

func (c *CreateOrderCommand) setItems(specs []OrderItemSpec) error {
	items := make([]*order.Item, 0, len(specs))
	for _, spec := range specs {
		item, err := order.NewItem(spec.Name, spec.Quantity, spec.UnitPrice, spec.Notes)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}
