package commands

import (
	"context"

	"pos/internal/core/ports"
)

// MarkOrderDoneCommandHandler handles the business logic for completing
// orders. Moves an accepted or delayed order to the terminal "done" state.
// The completion timestamp survives re-completion attempts: marking an order
// done keeps an earlier item-derived completion time if one exists.
type MarkOrderDoneCommandHandler struct {
	uowFactory OrderUoWFactory
	trigger    notifyTrigger
}

// NewMarkOrderDoneCommandHandler creates a handler for order completion.
func NewMarkOrderDoneCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) MarkOrderDoneCommandHandler {
	return MarkOrderDoneCommandHandler{
		uowFactory: uowFactory,
		trigger:    newNotifyTrigger(notifier),
	}
}

// Handle processes the completion command.
func (h *MarkOrderDoneCommandHandler) Handle(ctx context.Context, cmd MarkOrderDoneCommand) error {
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
	if err = aggregate.MarkDone(); err != nil {
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
