package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/factrepo"
	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/orderbook"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database,
// fact log flushing included.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.CartItemDTO{},
		&factrepo.FactDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE items, orders, cart_items, facts RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ItemRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.FactRepository())
	suite.NotNil(uow2.ItemRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitFlushesTrackedFacts() {
	ctx := context.Background()
	uow := suite.factory.Create()
	item := suite.createTestItem("Pen", "1.50", 10)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, item))
	uow.TrackFact(catalog.ItemCreated{
		ItemID: item.ID(),
		Name:   item.Name(),
		Price:  item.Price(),
		Stock:  item.Stock(),
		At:     item.CreatedAt(),
	})
	suite.Require().NoError(uow.Commit(ctx))

	facts, err := suite.factory.Create().FactRepository().GetForAggregate(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Require().Len(facts, 1)
	suite.Equal(catalog.ItemCreatedFactName, facts[0].FactName())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWritesAndFacts() {
	ctx := context.Background()
	uow := suite.factory.Create()
	item := suite.createTestItem("Pen", "1.50", 10)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, item))
	uow.TrackFact(catalog.ItemCreated{
		ItemID: item.ID(),
		Name:   item.Name(),
		Price:  item.Price(),
		Stock:  item.Stock(),
		At:     item.CreatedAt(),
	})
	suite.Require().NoError(uow.Rollback(ctx))

	freshUow := suite.factory.Create()
	_, err := freshUow.ItemRepository().Get(ctx, item.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	facts, err := freshUow.FactRepository().GetForAggregate(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Empty(facts)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CrossAggregateTransaction() {
	ctx := context.Background()
	item := suite.createTestItem("Pen", "1.50", 10)
	order := suite.createTestOrder(map[kernel.UUID]int{item.ID(): 2})

	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.Begin(ctx))
	suite.Require().NoError(setupUow.ItemRepository().Add(ctx, item))
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, order))
	suite.Require().NoError(setupUow.Commit(ctx))

	// Remove the item and strip it from the cart in one transaction.
	at := time.Now().UTC()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ItemRepository().Remove(ctx, item.ID()))

	stripped, err := orderbook.RestoreOrder(
		order.ID(), order.UserID(), nil, nil, order.Status(), order.CreatedAt(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, stripped))

	uow.TrackFact(
		catalog.ItemDeleted{ItemID: item.ID(), At: at},
		orderbook.CartItemRemoved{OrderID: order.ID(), ItemID: item.ID(), At: at},
	)
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	loaded, err := verifyUow.OrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Empty(loaded.Cart())

	itemFacts, err := verifyUow.FactRepository().GetForAggregate(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Len(itemFacts, 1)

	orderFacts, err := verifyUow.FactRepository().GetForAggregate(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Len(orderFacts, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	item := suite.createTestItem("Pen", "1.50", 10)

	// Repository operations outside a transaction execute immediately.
	err := uow.ItemRepository().Add(ctx, item)
	suite.Require().NoError(err)

	loaded, err := uow.ItemRepository().Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(item))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestItem(
	name, price string,
	stock int,
) *catalog.Item {
	item, err := catalog.NewItem(
		kernel.NewUUID(),
		name,
		decimal.RequireFromString(price),
		nil,
		stock,
		time.Now().UTC().Truncate(time.Second),
	)
	suite.Require().NoError(err)
	return item
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(
	cart map[kernel.UUID]int,
) *orderbook.Order {
	order, err := orderbook.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		cart,
		nil,
		orderbook.Collecting,
		time.Now().UTC().Truncate(time.Second),
	)
	suite.Require().NoError(err)
	return order
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
