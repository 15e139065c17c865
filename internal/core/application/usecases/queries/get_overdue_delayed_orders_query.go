package queries

import (
	"errors"
	"time"

	"pos/internal/pkg/guard"
)

var ErrGetOverdueDelayedOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueDelayedOrdersQuery must be created via NewGetOverdueDelayedOrdersQuery constructor",
)

// GetOverdueDelayedOrdersQuery retrieves delayed orders whose pushed-back
// readiness estimate has already passed. Feeds the watchdog job that flags
// orders the kitchen lost track of.
type GetOverdueDelayedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueDelayedOrdersQuery creates a query to retrieve overdue delayed
// orders. This is a parameterless query; the cutoff is evaluated at execution
// time.
func NewGetOverdueDelayedOrdersQuery() GetOverdueDelayedOrdersQuery {
	return GetOverdueDelayedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueDelayedOrdersQueryIsNotConstructed if validation fails.
func (q GetOverdueDelayedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueDelayedOrdersQueryIsNotConstructed)
}

// GetOverdueDelayedOrdersQueryResponse identifies one overdue order.
type GetOverdueDelayedOrdersQueryResponse struct {
	ID                int64
	ExternalReference string
	DelayedTo         time.Time
}
