package commands

import (
	"context"

	"pos/internal/core/ports"
)

// AcceptOrderCommandHandler handles the business logic for accepting orders.
// Moves an order from "created" to "accepted", stamps the readiness estimate,
// records the audit event and notifies the platform after commit.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	trigger    notifyTrigger
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for post-commit delivery.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		trigger:    newNotifyTrigger(notifier),
	}
}

// Handle processes the acceptance command.
// Loads the order, applies the transition, and persists the mutated aggregate
// together with its audit event in one transaction. The notification goes out
// only once the transaction committed.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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
	if err = aggregate.Accept(cmd.PrepTime()); err != nil {
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
