package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderByReferenceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	payload := order.Metadata{"reason": "customer changed their mind"}
	cmd, _ := commands.NewCancelOrderByReferenceCommand("ref-1001", payload)

	aggregate := restoredOrder(t, 7, order.Accepted)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByExternalReference", mock.Anything, "ref-1001").Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n services.Notification) bool {
		return n.Event == order.EventOrderCancelled && n.Data.CancelledByCustomer
	})).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderByReferenceCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.True(t, aggregate.CancelledByCustomer())
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCancelOrderByReferenceCommandHandler_Handle_UnknownReference(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelOrderByReferenceCommand("ref-missing", nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByExternalReference", mock.Anything, "ref-missing").
			Return(nil, errs.NewObjectNotFoundError("external_reference", "ref-missing")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderByReferenceCommandHandler(factory, silentNotifier())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
