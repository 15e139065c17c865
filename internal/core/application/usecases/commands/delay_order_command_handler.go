package commands

import (
	"context"

	"pos/internal/core/ports"
)

// DelayOrderCommandHandler handles the business logic for delaying orders.
// Replaces the readiness estimate of an accepted or already-delayed order and
// records the old and new estimates on the audit event.
type DelayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	trigger    notifyTrigger
}

// NewDelayOrderCommandHandler creates a handler for order delays.
func NewDelayOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) DelayOrderCommandHandler {
	return DelayOrderCommandHandler{
		uowFactory: uowFactory,
		trigger:    newNotifyTrigger(notifier),
	}
}

// Handle processes the delay command.
func (h *DelayOrderCommandHandler) Handle(ctx context.Context, cmd DelayOrderCommand) error {
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
	if err = aggregate.Delay(cmd.PrepTime(), cmd.Reason()); err != nil {
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
