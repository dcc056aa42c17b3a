package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/station"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetStationQueueQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetStationQueueQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetStationQueueQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.WorkProcessDTO{},
		&orderrepo.WorkProcessItemDTO{},
		&orderrepo.BypassRequestDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetStationQueueQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetStationQueueQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetStationQueueQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetStationQueueQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetStationQueueQuery(station.Washing)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetStationQueueQueryHandlerTestSuite) TestHandle_FreshOrders_AppearInVerify() {
	first := newTestOrder(&suite.Suite, "LND-20260831-BBBB0001")
	second := newTestOrder(&suite.Suite, "LND-20260831-BBBB0002")
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), first))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), second))

	query, err := queries.NewGetStationQueueQuery(station.Washing)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	for _, entry := range result {
		suite.Equal(order.StateVerify, entry.State)
	}
}

func (suite *GetStationQueueQueryHandlerTestSuite) TestHandle_CompletedAtStation_Excluded() {
	aggregate := newTestOrder(&suite.Suite, "LND-20260831-BBBB0003")
	_, err := aggregate.StartWorkProcess(
		kernel.NewUUID(), station.Washing, kernel.NewUUID(),
		[]order.RecordedItem{{LaundryItemID: 7, Quantity: 3}, {LaundryItemID: 8, Quantity: 2}},
		aggregate.CreatedAt())
	suite.Require().NoError(err)
	err = aggregate.CompleteProcess(station.Washing, "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	washingQuery, err := queries.NewGetStationQueueQuery(station.Washing)
	suite.Require().NoError(err)
	washing, err := suite.handler.Handle(context.Background(), washingQuery)
	suite.Require().NoError(err)
	suite.Empty(washing)

	// The same order still queues at the stations it has not finished.
	ironingQuery, err := queries.NewGetStationQueueQuery(station.Ironing)
	suite.Require().NoError(err)
	ironing, err := suite.handler.Handle(context.Background(), ironingQuery)
	suite.Require().NoError(err)
	suite.Require().Len(ironing, 1)
	suite.Equal(order.StateVerify, ironing[0].State)
}

func (suite *GetStationQueueQueryHandlerTestSuite) TestHandle_PendingBypass_ShowsBypassPending() {
	aggregate := newTestOrder(&suite.Suite, "LND-20260831-BBBB0004")
	_, err := aggregate.RequestBypass(
		kernel.NewUUID(), kernel.NewUUID(), station.Washing, kernel.NewUUID(),
		"one towel missing", nil, aggregate.CreatedAt())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	query, err := queries.NewGetStationQueueQuery(station.Washing)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(order.StateBypassPending, result[0].State)
	suite.Equal("LND-20260831-BBBB0004", result[0].OrderNumber)
}

func (suite *GetStationQueueQueryHandlerTestSuite) TestHandle_InProcess_ShowsProcess() {
	aggregate := newTestOrder(&suite.Suite, "LND-20260831-BBBB0005")
	_, err := aggregate.StartWorkProcess(
		kernel.NewUUID(), station.Packing, kernel.NewUUID(),
		[]order.RecordedItem{{LaundryItemID: 7, Quantity: 3}, {LaundryItemID: 8, Quantity: 2}},
		aggregate.CreatedAt())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	query, err := queries.NewGetStationQueueQuery(station.Packing)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(order.StateProcess, result[0].State)
}

func (suite *GetStationQueueQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetStationQueueQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetStationQueueQuery constructor")
}

func TestGetStationQueueQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStationQueueQueryHandlerTestSuite))
}
