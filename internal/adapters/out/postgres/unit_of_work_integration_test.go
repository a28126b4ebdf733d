package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "pos/internal/adapters/out/postgres"
	"pos/internal/adapters/out/postgres/bulkoprepo"
	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/adapters/out/postgres/templaterepo"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/model/template"
	"pos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
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
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderNumberCounterDTO{},
		&templaterepo.TemplateDTO{},
		&bulkoprepo.OperationDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_templates").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bulk_order_operations").Error)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder(tenantID)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, tenantID, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder(tenantID)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Rollback(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCrossAggregateTransaction_CommitsAtomically() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder(tenantID)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testTemplate := suite.createTestTemplate(tenantID)
	suite.Require().NoError(uow.TemplateRepository().Add(ctx, testTemplate))

	suite.Require().NoError(uow.Commit(ctx))

	var orderCount, templateCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&templaterepo.TemplateDTO{}).Count(&templateCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), templateCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWithoutTransaction_UseMainConnection() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()

	// No Begin: repository calls run directly against the pool.
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder(tenantID)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	retrieved, err := uow.OrderRepository().Get(ctx, tenantID, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(tenantID kernel.UUID) *order.Order {
	item, err := order.NewItem(
		kernel.NewUUID(), "Filter paper", "SKU-100", 3,
		decimal.NewFromInt(4), decimal.Zero, decimal.NewFromInt(5))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(order.NewOrderParams{
		ID:          kernel.NewUUID(),
		TenantID:    tenantID,
		CustomerID:  kernel.NewUUID(),
		UserID:      kernel.NewUUID(),
		OrderNumber: "ORD-20260115-0001",
		Items:       []order.Item{item},
		Now:         time.Now(),
	})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestTemplate(tenantID kernel.UUID) *template.Template {
	item, err := order.NewItem(
		kernel.NewUUID(), "Filter paper", "SKU-100", 3,
		decimal.NewFromInt(4), decimal.Zero, decimal.NewFromInt(5))
	suite.Require().NoError(err)

	testTemplate, err := template.NewTemplate(
		kernel.NewUUID(), tenantID, nil, "Weekly restock",
		[]order.Item{item}, order.DefaultPaymentTerms(), []string{"weekly"},
	)
	suite.Require().NoError(err)
	return testTemplate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
