package commands_test

import (
	"errors"
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(7, mustPrepTime(t, 25))

	aggregate := restoredOrder(t, 7, order.Created)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n services.Notification) bool {
		return n.Event == order.EventOrderAccepted &&
			n.OrderID == 7 &&
			n.Data.AcceptedAt != nil &&
			n.Data.ReadyAt != nil
	})).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(7, mustPrepTime(t, 25))

	aggregate := restoredOrder(t, 7, order.Done)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier) // no transition, no dispatch

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(404, mustPrepTime(t, 25))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("orderID", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, silentNotifier())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

// Delivery failures stay invisible to the caller: the transition committed.
func TestAcceptOrderCommandHandler_Handle_NotifyFailureIsIgnored(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(7, mustPrepTime(t, 25))

	aggregate := restoredOrder(t, 7, order.Created)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("webhook down")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
