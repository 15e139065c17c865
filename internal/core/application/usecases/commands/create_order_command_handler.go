package commands

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// CreateOrderResult reports the outcome of an order submission.
// AlreadyExists is set when the external reference was seen before, in which
// case OrderID points at the previously registered order and nothing changed.
type CreateOrderResult struct {
	OrderID       int64
	AlreadyExists bool
}

// CreateOrderCommandHandler handles the business logic for order registration.
// Creates new orders in "created" status, guarding against duplicate platform
// submissions via the external reference.
//
// The duplicate check runs twice: a cheap lookup before the insert, and the
// database unique constraint as the final arbiter against concurrent
// submissions slipping past the lookup.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	trigger    notifyTrigger
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for the post-commit creation notification.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		trigger:    newNotifyTrigger(notifier),
	}
}

// Handle processes the order registration command.
// Returns the existing order without mutation when the external reference is
// already known; otherwise persists the new aggregate with its creation event
// and dispatches the creation notification after commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.GetByExternalReference(ctx, cmd.ExternalReference())
	if err == nil {
		return CreateOrderResult{OrderID: existing.ID(), AlreadyExists: true}, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(
		cmd.ExternalReference(),
		cmd.RestaurantID(),
		cmd.CustomerName(),
		cmd.DeliveryAddress(),
		cmd.Items(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	persisted, err := orderRepo.Add(ctx, aggregate)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateExternalReference) {
			return h.resolveExisting(ctx, cmd.ExternalReference())
		}
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	h.trigger.afterCreate(ctx, persisted)

	return CreateOrderResult{OrderID: persisted.ID()}, nil
}

// resolveExisting re-reads the winning order after losing the insert race.
// Runs on a fresh unit of work: the losing transaction is already poisoned by
// the constraint violation.
func (h *CreateOrderCommandHandler) resolveExisting(
	ctx context.Context,
	externalReference string,
) (CreateOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.OrderRepository().GetByExternalReference(ctx, externalReference)
	if err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{OrderID: existing.ID(), AlreadyExists: true}, nil
}
