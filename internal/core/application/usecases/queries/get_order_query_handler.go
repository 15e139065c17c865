package queries

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// GetOrderQueryHandler retrieves the detail view of one order.
// Reads through the repository rather than raw SQL: the detail view needs the
// same aggregate shape the write side uses, items and event history included,
// and the repository already knows how to assemble it.
type GetOrderQueryHandler struct {
	uowFactory OrderUoWFactory
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(uowFactory OrderUoWFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query to retrieve one order with items and events.
// Returns errs.ErrObjectNotFound (wrapped) when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetOrderQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return toOrderResponse(aggregate), nil
}

func toOrderResponse(aggregate *order.Order) GetOrderQueryResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ID:          item.ID(),
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Notes:       item.Notes(),
			CompletedAt: item.CompletedAt(),
		})
	}

	events := make([]OrderEventResponse, 0, len(aggregate.Events()))
	for _, event := range aggregate.Events() {
		events = append(events, OrderEventResponse{
			ID:        event.ID(),
			EventType: string(event.Type()),
			Source:    string(event.Source()),
			Metadata:  event.Metadata(),
			CreatedAt: event.CreatedAt(),
		})
	}

	return GetOrderQueryResponse{
		ID:                  aggregate.ID(),
		ExternalReference:   aggregate.ExternalReference(),
		RestaurantID:        aggregate.RestaurantID(),
		CustomerName:        aggregate.CustomerName(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		Status:              aggregate.Status(),
		EstimatedPrepTime:   aggregate.EstimatedPrepTime(),
		DelayReason:         aggregate.DelayReason(),
		CancelledByCustomer: aggregate.CancelledByCustomer(),
		AcceptedAt:          aggregate.AcceptedAt(),
		ReadyAt:             aggregate.ReadyAt(),
		RejectedAt:          aggregate.RejectedAt(),
		CancelledAt:         aggregate.CancelledAt(),
		DelayedTo:           aggregate.DelayedTo(),
		CompletedAt:         aggregate.CompletedAt(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		TotalPrice:          aggregate.TotalPrice(),
		Items:               items,
		Events:              events,
	}
}

// OrderUoWFactory mirrors the command-side unit of work factory so the detail
// query can reuse the repository's aggregate assembly.
type OrderUoWFactory interface {
	Create() OrderUoW
}

// OrderUoW is the transaction boundary the detail query borrows from the
// write side.
type OrderUoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	OrderRepository() ports.OrderRepository
}
