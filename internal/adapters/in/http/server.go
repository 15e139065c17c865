package http

import (
	"errors"
	"net/http"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/generated/servers"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	acceptOrderHandler       commands.AcceptOrderCommandHandler
	rejectOrderHandler       commands.RejectOrderCommandHandler
	delayOrderHandler        commands.DelayOrderCommandHandler
	markOrderDoneHandler     commands.MarkOrderDoneCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	cancelByReferenceHandler commands.CancelOrderByReferenceCommandHandler
	completeItemHandler      commands.CompleteItemCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	delayOrderHandler commands.DelayOrderCommandHandler,
	markOrderDoneHandler commands.MarkOrderDoneCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	cancelByReferenceHandler commands.CancelOrderByReferenceCommandHandler,
	completeItemHandler commands.CompleteItemCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		acceptOrderHandler:       acceptOrderHandler,
		rejectOrderHandler:       rejectOrderHandler,
		delayOrderHandler:        delayOrderHandler,
		markOrderDoneHandler:     markOrderDoneHandler,
		cancelOrderHandler:       cancelOrderHandler,
		cancelByReferenceHandler: cancelByReferenceHandler,
		completeItemHandler:      completeItemHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// CreateOrderWebhook handles POST /api/v1/webhooks/order-created - registers
// an incoming platform order. Replays of an already-registered reference
// answer 200 with the stored identifier instead of 201.
func (s *Server) CreateOrderWebhook(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemSpecs := make([]commands.OrderItemSpec, 0)
	if newOrder.Items != nil {
		for _, item := range *newOrder.Items {
			itemSpecs = append(itemSpecs, commands.OrderItemSpec{
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Notes:     stringValue(item.Notes),
			})
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		newOrder.ExternalReference,
		stringValue(newOrder.RestaurantId),
		stringValue(newOrder.CustomerName),
		stringValue(newOrder.DeliveryAddress),
		itemSpecs,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to register order")
	}

	httpStatus := http.StatusCreated
	outcome := "created"
	if result.AlreadyExists {
		httpStatus = http.StatusOK
		outcome = "already exists"
	}

	return ctx.JSON(httpStatus, servers.CreateOrderResponse{
		Status:        outcome,
		OrderId:       result.OrderID,
		AlreadyExists: result.AlreadyExists,
	})
}

// CancelOrderWebhook handles POST /api/v1/webhooks/order-cancelled - ingests
// a customer-side cancellation addressed by external reference.
func (s *Server) CancelOrderWebhook(ctx echo.Context) error {
	var notice servers.CancelledOrderNotice
	if err := ctx.Bind(&notice); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	payload := order.Metadata{}
	if notice.Reason != nil && *notice.Reason != "" {
		payload["reason"] = *notice.Reason
	}

	cmd, err := commands.NewCancelOrderByReferenceCommand(notice.ExternalReference, payload)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelByReferenceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.JSON(http.StatusOK, servers.CancellationAck{Status: "cancelled"})
}

// GetOrders handles GET /api/v1/orders - retrieves active orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, activeOrder := range orders {
		response[i] = servers.OrderSummary{
			Id:                activeOrder.ID,
			ExternalReference: activeOrder.ExternalReference,
			RestaurantId:      optionalString(activeOrder.RestaurantID),
			CustomerName:      optionalString(activeOrder.CustomerName),
			Status:            activeOrder.Status.String(),
			DelayedTo:         activeOrder.DelayedTo,
			CreatedAt:         activeOrder.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order with
// its items and event history.
func (s *Server) GetOrder(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}

		return internalError(ctx, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId int64) error {
	var request servers.AcceptOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	prepTime, err := kernel.NewPrepTime(request.EstimatedPrepTime)
	if err != nil {
		return badRequest(ctx, "Invalid preparation estimate: "+err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderId, prepTime)
	if err != nil {
		return badRequest(ctx, "Invalid accept data: "+err.Error())
	}

	if handleErr := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr, "Failed to accept order")
	}

	return s.respondWithOrder(ctx, orderId)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderId int64) error {
	var request servers.RejectOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderId, stringValue(request.Reason))
	if err != nil {
		return badRequest(ctx, "Invalid reject data: "+err.Error())
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr, "Failed to reject order")
	}

	return s.respondWithOrder(ctx, orderId)
}

// DelayOrder handles POST /api/v1/orders/{orderId}/delay.
func (s *Server) DelayOrder(ctx echo.Context, orderId int64) error {
	var request servers.DelayOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	prepTime, err := kernel.NewPrepTime(request.EstimatedPrepTime)
	if err != nil {
		return badRequest(ctx, "Invalid preparation estimate: "+err.Error())
	}

	cmd, err := commands.NewDelayOrderCommand(orderId, prepTime, stringValue(request.Reason))
	if err != nil {
		return badRequest(ctx, "Invalid delay data: "+err.Error())
	}

	if handleErr := s.delayOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr, "Failed to delay order")
	}

	return s.respondWithOrder(ctx, orderId)
}

// MarkOrderDone handles POST /api/v1/orders/{orderId}/done.
func (s *Server) MarkOrderDone(ctx echo.Context, orderId int64) error {
	cmd, err := commands.NewMarkOrderDoneCommand(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if handleErr := s.markOrderDoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr, "Failed to mark order done")
	}

	return s.respondWithOrder(ctx, orderId)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - a cancellation
// on the restaurant's initiative.
func (s *Server) CancelOrder(ctx echo.Context, orderId int64) error {
	var request servers.CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderId, stringValue(request.Reason))
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr, "Failed to cancel order")
	}

	return s.respondWithOrder(ctx, orderId)
}

// CompleteItem handles POST /api/v1/items/{itemId}/complete - marks one line
// item finished and reports whether that finished the whole order.
func (s *Server) CompleteItem(ctx echo.Context, itemId int64) error {
	cmd, err := commands.NewCompleteItemCommand(itemId)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	result, err := s.completeItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCommandError(ctx, err, "Failed to complete item")
	}

	return ctx.JSON(http.StatusOK, servers.CompleteItemResponse{
		OrderId:        result.OrderID,
		OrderCompleted: result.OrderCompleted,
	})
}

func toOrderDetail(detail queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = servers.OrderItem{
			Id:          item.ID,
			Name:        item.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Notes:       optionalString(item.Notes),
			CompletedAt: item.CompletedAt,
		}
	}

	events := make([]servers.OrderEvent, len(detail.Events))
	for i, event := range detail.Events {
		var metadata *map[string]interface{}
		if len(event.Metadata) > 0 {
			values := map[string]interface{}(event.Metadata)
			metadata = &values
		}

		events[i] = servers.OrderEvent{
			Id:        event.ID,
			EventType: event.EventType,
			Source:    event.Source,
			Metadata:  metadata,
			CreatedAt: event.CreatedAt,
		}
	}

	return servers.Order{
		Id:                  detail.ID,
		ExternalReference:   detail.ExternalReference,
		RestaurantId:        optionalString(detail.RestaurantID),
		CustomerName:        optionalString(detail.CustomerName),
		DeliveryAddress:     optionalString(detail.DeliveryAddress),
		Status:              detail.Status.String(),
		EstimatedPrepTime:   detail.EstimatedPrepTime,
		DelayReason:         optionalString(detail.DelayReason),
		CancelledByCustomer: detail.CancelledByCustomer,
		AcceptedAt:          detail.AcceptedAt,
		ReadyAt:             detail.ReadyAt,
		RejectedAt:          detail.RejectedAt,
		CancelledAt:         detail.CancelledAt,
		DelayedTo:           detail.DelayedTo,
		CompletedAt:         detail.CompletedAt,
		CreatedAt:           detail.CreatedAt,
		UpdatedAt:           detail.UpdatedAt,
		TotalPrice:          detail.TotalPrice,
		Items:               items,
		Events:              events,
	}
}

// respondWithOrder answers a successful lifecycle action with the updated
// order representation, re-read through the detail query.
func (s *Server) respondWithOrder(ctx echo.Context, orderID int64) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve updated order")
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

// mapCommandError translates domain failures into the documented HTTP codes:
// unknown identifiers answer 404, impossible transitions answer 400.
func mapCommandError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrOrderAlreadyCompleted):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, fallback)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
