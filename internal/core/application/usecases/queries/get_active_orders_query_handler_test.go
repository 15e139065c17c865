package queries_test

import (
	"context"
	"testing"
	"time"

	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopAggregateTracker satisfies the repository's tracker dependency in
// query tests, where change tracking is irrelevant.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ int64, _ any) {}

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.EventDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &noopAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ExcludesCancelledAndRejected() {
	created := suite.addOrder("ref-created")

	accepted := suite.addOrder("ref-accepted")
	suite.acceptOrder(accepted)

	done := suite.addOrder("ref-done")
	suite.acceptOrder(done)
	suite.Require().NoError(done.MarkDone())
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), done))

	rejected := suite.addOrder("ref-rejected")
	suite.Require().NoError(rejected.Reject("out of stock"))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), rejected))

	cancelled := suite.addOrder("ref-cancelled")
	suite.Require().NoError(cancelled.Cancel(order.SourceRestaurant, order.Metadata{}))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), cancelled))

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	resultIDs := make(map[int64]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}

	suite.True(resultIDs[created.ID()], "created order should be listed")
	suite.True(resultIDs[accepted.ID()], "accepted order should be listed")
	suite.True(resultIDs[done.ID()], "done order should stay listed until picked up")
	suite.False(resultIDs[rejected.ID()], "rejected order should not be listed")
	suite.False(resultIDs[cancelled.ID()], "cancelled order should not be listed")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_DelayedOrder_CarriesDelayedTo() {
	delayed := suite.addOrder("ref-delayed")
	suite.acceptOrder(delayed)

	prepTime, err := kernel.NewPrepTime(45)
	suite.Require().NoError(err)
	suite.Require().NoError(delayed.Delay(prepTime, "kitchen backed up"))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), delayed))

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(order.Delayed, result[0].Status)
	suite.Require().NotNil(result[0].DelayedTo)
	suite.WithinDuration(*delayed.DelayedTo(), *result[0].DelayedTo, time.Second)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_NewestOrdersFirst() {
	base := time.Now().UTC().Add(-time.Hour)
	for i, reference := range []string{"ref-old", "ref-mid", "ref-new"} {
		o := suite.addOrder(reference)
		err := suite.db.Exec(
			"UPDATE orders SET created_at = ? WHERE id = ?",
			base.Add(time.Duration(i)*time.Minute), o.ID(),
		).Error
		suite.Require().NoError(err)
	}

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("ref-new", result[0].ExternalReference)
	suite.Equal("ref-mid", result[1].ExternalReference)
	suite.Equal("ref-old", result[2].ExternalReference)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) addOrder(reference string) *order.Order {
	price := 11.50
	item, err := order.NewItem("Margherita", 1, &price, "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(reference, "rest-1", "Dana", "12 Main St", []*order.Item{item})
	suite.Require().NoError(err)

	persisted, err := suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)

	return persisted
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) acceptOrder(o *order.Order) {
	prepTime, err := kernel.NewPrepTime(20)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Accept(prepTime))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
