package ports

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the aggregate's own row, its items, and any pending
// audit events in the unit of work they are bound to, so a transition and its
// event entry commit or roll back together.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items and its
	// pending creation event. Returns the stored aggregate carrying the
	// database-assigned identifiers.
	//
	// When another order with the same external reference already exists,
	// Add fails with errs.ErrDuplicateExternalReference; the unique
	// constraint on the external reference is the final arbiter against
	// concurrent duplicate submissions.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate: the mutated
	// order row, item completion marks, and any pending audit events.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its internal identifier, including its items
	// and its full event history ordered by creation time ascending.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByExternalReference retrieves an order by its platform-assigned
	// reference. Used by the creation idempotency check and the platform
	// cancellation webhook.
	GetByExternalReference(ctx context.Context, externalReference string) (*order.Order, error)

	// GetByItemID retrieves the order owning the given item.
	GetByItemID(ctx context.Context, itemID int64) (*order.Order, error)
}
