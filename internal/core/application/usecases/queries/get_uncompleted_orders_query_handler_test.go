package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/orderbook"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetUncompletedOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUncompletedOrdersQueryHandler
	repo      *orderrepo.GormOrderRepository
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.CartItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUncompletedOrdersQueryHandler(db)
	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, cart_items").Error
	suite.Require().NoError(err)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetUncompletedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_OnlyTerminalOrders_ReturnsEmptySlice() {
	suite.createOrderWithStatus(orderbook.Completed)
	suite.createOrderWithStatus(orderbook.Discarded)
	suite.createOrderWithStatus(orderbook.Refund)

	query := queries.NewGetUncompletedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyOpenOrders() {
	open := []*orderbook.Order{
		suite.createOrderWithStatus(orderbook.New),
		suite.createOrderWithStatus(orderbook.Collecting),
		suite.createOrderWithStatus(orderbook.Booked),
		suite.createOrderWithStatus(orderbook.Paid),
		suite.createOrderWithStatus(orderbook.Shipping),
	}
	terminal := []*orderbook.Order{
		suite.createOrderWithStatus(orderbook.Completed),
		suite.createOrderWithStatus(orderbook.Discarded),
		suite.createOrderWithStatus(orderbook.Refund),
	}

	query := queries.NewGetUncompletedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, len(open))

	resultIDs := make(map[kernel.UUID]string)
	for _, r := range result {
		resultIDs[r.ID] = r.Status
	}

	for _, o := range open {
		status, found := resultIDs[o.ID()]
		suite.True(found, "Order %s should be in results", o.ID())
		suite.Equal(o.Status().String(), status)
	}

	for _, o := range terminal {
		_, found := resultIDs[o.ID()]
		suite.False(found, "Terminal order %s should not be in results", o.ID())
	}
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_MapsUserAndStatus() {
	order := suite.createOrderWithStatus(orderbook.Paid)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetUncompletedOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(order.ID()))
	suite.True(result[0].UserID.IsEqual(order.UserID()))
	suite.Equal("Paid", result[0].Status)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUncompletedOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetUncompletedOrdersQuery constructor")
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) createOrderWithStatus(
	status orderbook.Status,
) *orderbook.Order {
	var slot *kernel.TimeSlot
	if status == orderbook.Paid || status == orderbook.Shipping ||
		status == orderbook.Completed || status == orderbook.Refund {
		start := time.Now().UTC().Add(24 * time.Hour)
		s, err := kernel.NewTimeSlot(start, start.Add(2*time.Hour))
		suite.Require().NoError(err)
		slot = &s
	}

	order, err := orderbook.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		map[kernel.UUID]int{kernel.NewUUID(): 1},
		slot,
		status,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), order))
	return order
}

func TestGetUncompletedOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUncompletedOrdersQueryHandlerTestSuite))
}
