package commands

import (
	"context"
	"errors"

	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// CompleteItemResult reports the outcome of an item completion.
// OrderCompleted is set when this call finished the last pending item and
// drove the owning order to "done".
type CompleteItemResult struct {
	OrderID        int64
	OrderCompleted bool
}

// CompleteItemCommandHandler handles the business logic for item completion.
// Marks one item finished and, when it was the last pending one, completes
// the owning order through the same state machine as a staff-triggered
// completion. Completing an already-finished item is a no-op.
type CompleteItemCommandHandler struct {
	uowFactory OrderUoWFactory
	trigger    notifyTrigger
}

// NewCompleteItemCommandHandler creates a handler for item completion.
func NewCompleteItemCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CompleteItemCommandHandler {
	return CompleteItemCommandHandler{
		uowFactory: uowFactory,
		trigger:    newNotifyTrigger(notifier),
	}
}

// Handle processes the item completion command.
// The item mark and any derived order completion share one transaction: if
// finishing the last item demands an illegal order transition, the item mark
// rolls back with it.
func (h *CompleteItemCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteItemCommand,
) (CompleteItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return CompleteItemResult{}, err
	}

	snapshot := h.trigger.snapshot(aggregate)
	orderCompleted, err := aggregate.CompleteItem(cmd.ItemID())
	if err != nil {
		return CompleteItemResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		// A concurrent call finished the order first. The winner recorded the
		// completion and notified; this call converges on the same no-op
		// outcome as re-completing a finished item.
		if errors.Is(err, errs.ErrOrderAlreadyCompleted) {
			return CompleteItemResult{
				OrderID:        aggregate.ID(),
				OrderCompleted: false,
			}, nil
		}

		return CompleteItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompleteItemResult{}, err
	}

	h.trigger.afterCommit(ctx, aggregate, snapshot)

	return CompleteItemResult{
		OrderID:        aggregate.ID(),
		OrderCompleted: orderCompleted,
	}, nil
}
