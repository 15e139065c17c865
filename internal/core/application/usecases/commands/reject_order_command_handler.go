package commands

import (
	"context"

	"pos/internal/core/ports"
)

// RejectOrderCommandHandler handles the business logic for rejecting orders.
// Moves an order from "created" to the terminal "rejected" state with the
// restaurant's reason on the audit event.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	trigger    notifyTrigger
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		trigger:    newNotifyTrigger(notifier),
	}
}

// Handle processes the rejection command.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	snapshot := h.trigger.snapshot(aggregate)
	if err = aggregate.Reject(cmd.Reason()); err != nil {
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
