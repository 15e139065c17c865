package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// CancelOrderByReferenceCommandHandler handles platform-initiated
// cancellations addressed by external reference. Platform cancellations mark
// the order as cancelled by the customer.
type CancelOrderByReferenceCommandHandler struct {
	uowFactory OrderUoWFactory
	trigger    notifyTrigger
}

// NewCancelOrderByReferenceCommandHandler creates a handler for platform
// cancellations.
func NewCancelOrderByReferenceCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) CancelOrderByReferenceCommandHandler {
	return CancelOrderByReferenceCommandHandler{
		uowFactory: uowFactory,
		trigger:    newNotifyTrigger(notifier),
	}
}

// Handle processes the platform cancellation command.
func (h *CancelOrderByReferenceCommandHandler) Handle(ctx context.Context, cmd CancelOrderByReferenceCommand) error {
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
	aggregate, err := orderRepo.GetByExternalReference(ctx, cmd.ExternalReference())
	if err != nil {
		return err
	}

	snapshot := h.trigger.snapshot(aggregate)
	if err = aggregate.Cancel(order.SourceUpstreamPlatform, cmd.Payload()); err != nil {
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
