package commands_test

import (
	"context"
	"testing"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByExternalReference(ctx context.Context, ref string) (*order.Order, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByItemID(ctx context.Context, itemID int64) (*order.Order, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n services.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// silentNotifier accepts any notification; used where the test asserts the
// transaction flow rather than the dispatch.
func silentNotifier() *MockNotifier {
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Maybe()
	return notifier
}

func mustPrepTime(t *testing.T, minutes int) kernel.PrepTime {
	t.Helper()
	prepTime, err := kernel.NewPrepTime(minutes)
	require.NoError(t, err)
	return prepTime
}

func mustItem(t *testing.T, id int64, name string, completedAt *time.Time) *order.Item {
	t.Helper()
	price := 9.50
	return order.RestoreItem(id, name, 1, &price, "", completedAt)
}

func restoredOrder(t *testing.T, id int64, status order.Status, items ...*order.Item) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	var acceptedAt *time.Time
	if status != order.Created {
		at := now.Add(-10 * time.Minute)
		acceptedAt = &at
	}
	aggregate, err := order.RestoreOrder(
		id, "ext-ref", "rest-1", "Jane Doe", "1 High St",
		status, nil, "", false,
		acceptedAt, nil, nil, nil, nil, nil,
		now.Add(-time.Hour), now.Add(-time.Hour),
		items, nil,
	)
	require.NoError(t, err)
	return aggregate
}
