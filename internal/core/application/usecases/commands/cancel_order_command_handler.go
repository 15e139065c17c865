package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// CancelOrderCommandHandler handles restaurant-initiated cancellations.
// Moves a non-terminal order to the terminal "cancelled" state with the
// restaurant recorded as the event source.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	trigger    notifyTrigger
}

// NewCancelOrderCommandHandler creates a handler for restaurant cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		trigger:    newNotifyTrigger(notifier),
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	metadata := order.Metadata{}
	if cmd.Reason() != "" {
		metadata["reason"] = cmd.Reason()
	}

	snapshot := h.trigger.snapshot(aggregate)
	if err = aggregate.Cancel(order.SourceRestaurant, metadata); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.trigger.afterCommit(ctx, aggregate, snapshot)

	return nil
}
