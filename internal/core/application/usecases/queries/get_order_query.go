package queries

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrQueryOrderIDIsInvalid = errors.New("order ID must be greater than 0")
)

// GetOrderQuery retrieves the full detail view of one order: its current
// state, line items with completion marks, and the audit event history.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its internal
// identifier. Validates that the order ID is positive.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return GetOrderQuery{}, ErrQueryOrderIDIsInvalid
	}
	orderQuery.orderID = orderID

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the internal identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// OrderItemResponse carries one line item of the detail view.
type OrderItemResponse struct {
	ID          int64
	Name        string
	Quantity    int
	UnitPrice   *float64
	Notes       string
	CompletedAt *time.Time
}

// OrderEventResponse carries one audit log entry of the detail view.
type OrderEventResponse struct {
	ID        int64
	EventType string
	Source    string
	Metadata  order.Metadata
	CreatedAt time.Time
}

// GetOrderQueryResponse is the full detail view of one order.
// TotalPrice is derived from the priced items; items without a price
// contribute nothing.
type GetOrderQueryResponse struct {
	ID                  int64
	ExternalReference   string
	RestaurantID        string
	CustomerName        string
	DeliveryAddress     string
	Status              order.Status
	EstimatedPrepTime   *int
	DelayReason         string
	CancelledByCustomer bool
	AcceptedAt          *time.Time
	ReadyAt             *time.Time
	RejectedAt          *time.Time
	CancelledAt         *time.Time
	DelayedTo           *time.Time
	CompletedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	TotalPrice          float64
	Items               []OrderItemResponse
	Events              []OrderEventResponse
}
