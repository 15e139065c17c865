package order

import (
	"fmt"
	"time"

	"pos/internal/pkg/errs"
)

// Item is one line entry within an order: a dish name, a quantity, optional
// billing and kitchen notes, and a completion mark set when the kitchen
// finishes preparing it.
//
// Item is an entity owned by the Order aggregate; it is never created or
// mutated outside of its order. Completion is monotonic: completedAt is set
// at most once and completing an already-completed item is a no-op.
type Item struct {
	// id is the persistence identifier; zero until the item is stored.
	id int64

	// name is the dish name as sent by the ordering platform.
	name string

	// quantity is the ordered count, always >= 1.
	quantity int

	// unitPrice is the per-unit price; nil when the upstream payload carries
	// no billing information.
	unitPrice *float64

	// notes holds free-text kitchen instructions ("no onions").
	notes string

	// completedAt marks when the kitchen finished this item; nil while pending.
	completedAt *time.Time
}

// NewItem creates a validated order item.
//
// Validation rules:
//   - name must not be empty
//   - quantity must be >= 1
//   - unitPrice, when present, must not be negative
func NewItem(name string, quantity int, unitPrice *float64, notes string) (*Item, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice != nil && *unitPrice < 0 {
		return nil, errs.NewValueIsInvalidError("unit_price")
	}

	return &Item{
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		notes:     notes,
	}, nil
}

// RestoreItem reconstructs an item from persistence without re-running the
// creation-time validation. Used only by repository implementations.
func RestoreItem(id int64, name string, quantity int, unitPrice *float64, notes string, completedAt *time.Time) *Item {
	return &Item{
		id:          id,
		name:        name,
		quantity:    quantity,
		unitPrice:   unitPrice,
		notes:       notes,
		completedAt: completedAt,
	}
}

// ID returns the persistence identifier, zero for unstored items.
func (i *Item) ID() int64 {
	return i.id
}

// Name returns the dish name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the ordered count.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price, nil when unpriced.
func (i *Item) UnitPrice() *float64 {
	return i.unitPrice
}

// Notes returns the free-text kitchen instructions.
func (i *Item) Notes() string {
	return i.notes
}

// CompletedAt returns when the item was finished, nil while pending.
func (i *Item) CompletedAt() *time.Time {
	return i.completedAt
}

// IsCompleted reports whether the kitchen has finished this item.
func (i *Item) IsCompleted() bool {
	return i.completedAt != nil
}

// complete marks the item finished at the given moment. Completing an
// already-completed item keeps the original timestamp.
func (i *Item) complete(at time.Time) {
	if i.completedAt != nil {
		return
	}
	i.completedAt = &at
}
