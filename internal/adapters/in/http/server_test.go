package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/core/ports"
	"pos/internal/generated/servers"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderRepository struct{ mock.Mock }

func (m *mockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepository) GetByExternalReference(ctx context.Context, ref string) (*order.Order, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepository) GetByItemID(ctx context.Context, itemID int64) (*order.Order, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type mockOrderUoW struct{ mock.Mock }

func (m *mockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type mockOrderUoWFactory struct{ mock.Mock }

func (m *mockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Notify(ctx context.Context, n services.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func storedOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	price := 11.90
	item := order.RestoreItem(1, "Margherita", 2, &price, "", nil)
	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		id, "ref-1001", "rest-42", "Jane Doe", "1 High St",
		order.Created, nil, "", false,
		nil, nil, nil, nil, nil, nil,
		now, now,
		[]*order.Item{item}, nil,
	)
	require.NoError(t, err)
	return aggregate
}

func serverWithCreateHandler(factory commands.OrderUoWFactory, notifier *mockNotifier) *Server {
	return NewServer(
		commands.NewCreateOrderCommandHandler(factory, notifier),
		commands.AcceptOrderCommandHandler{},
		commands.RejectOrderCommandHandler{},
		commands.DelayOrderCommandHandler{},
		commands.MarkOrderDoneCommandHandler{},
		commands.CancelOrderCommandHandler{},
		commands.CancelOrderByReferenceCommandHandler{},
		commands.CompleteItemCommandHandler{},
		queries.GetActiveOrdersQueryHandler{},
		queries.GetOrderQueryHandler{},
	)
}

func postOrderCreated(server *Server, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/order-created", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, server.CreateOrderWebhook(e.NewContext(req, rec))
}

const createOrderBody = `{
	"external_reference": "ref-1001",
	"restaurant_id": "rest-42",
	"customer_name": "Jane Doe",
	"delivery_address": "1 High St",
	"items": [{"name": "Margherita", "quantity": 2, "unit_price": 11.90}]
}`

func TestCreateOrderWebhook_NewOrder(t *testing.T) {
	repo := new(mockOrderRepository)
	uow := new(mockOrderUoW)
	factory := new(mockOrderUoWFactory)
	notifier := new(mockNotifier)

	persisted := storedOrder(t, 7)
	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	repo.On("GetByExternalReference", mock.Anything, "ref-1001").Return(nil, errs.ErrObjectNotFound)
	repo.On("Add", mock.Anything, mock.Anything).Return(persisted, nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Maybe()

	rec, err := postOrderCreated(serverWithCreateHandler(factory, notifier), createOrderBody)
	require.NoError(t, err)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response servers.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, "created", response.Status)
	require.Equal(t, int64(7), response.OrderId)
	require.False(t, response.AlreadyExists)
}

func TestCreateOrderWebhook_AlreadyRegisteredReference(t *testing.T) {
	repo := new(mockOrderRepository)
	uow := new(mockOrderUoW)
	factory := new(mockOrderUoWFactory)
	notifier := new(mockNotifier)

	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	repo.On("GetByExternalReference", mock.Anything, "ref-1001").Return(storedOrder(t, 7), nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	rec, err := postOrderCreated(serverWithCreateHandler(factory, notifier), createOrderBody)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, rec.Code)

	var response servers.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, "already exists", response.Status)
	require.Equal(t, int64(7), response.OrderId)
	require.True(t, response.AlreadyExists)

	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestCreateOrderWebhook_InvalidBody(t *testing.T) {
	server := serverWithCreateHandler(new(mockOrderUoWFactory), new(mockNotifier))

	rec, err := postOrderCreated(server, `{"external_reference": ""}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
