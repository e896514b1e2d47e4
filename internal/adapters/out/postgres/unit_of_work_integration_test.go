package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/shipmentrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior of
// GormUnitOfWork against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgresadapter.GormUnitOfWorkFactory
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&courierrepo.CourierTypeDTO{},
		&courierrepo.RegionDTO{},
		&courierrepo.CourierDTO{},
		&courierrepo.CourierRegionDTO{},
		&courierrepo.CourierShiftDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderIntervalDTO{},
		&shipmentrepo.ShipmentDTO{},
	))

	suite.Require().NoError(db.Create(&courierrepo.CourierTypeDTO{
		Code:     "foot",
		Capacity: decimal.NewFromInt(10),
	}).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_intervals, orders, shipments, courier_regions, courier_shifts, couriers, regions").Error)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCourier(id uint64) *courier.Courier {
	capacity, err := kernel.NewWeight(decimal.NewFromInt(10))
	suite.Require().NoError(err)
	courierType, err := courier.NewType("foot", capacity)
	suite.Require().NoError(err)
	shift, err := kernel.ParseTimeInterval("08:00-12:00")
	suite.Require().NoError(err)
	c, err := courier.NewCourier(id, courierType, []uint64{1}, []kernel.TimeInterval{shift})
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(id uint64) *order.Order {
	w, err := kernel.NewWeight(decimal.RequireFromString("0.25"))
	suite.Require().NoError(err)
	interval, err := kernel.ParseTimeInterval("09:00-11:00")
	suite.Require().NoError(err)
	o, err := order.NewOrder(id, w, 1, []kernel.TimeInterval{interval})
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, suite.createTestCourier(1)))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder(1)))
	suite.Require().NoError(uow.Commit(ctx))

	verifier := suite.factory.Create()
	loadedCourier, err := verifier.CourierRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(uint64(1), loadedCourier.ID())

	loadedOrder, err := verifier.OrderRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(uint64(1), loadedOrder.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder(1)))
	suite.Require().NoError(uow.Rollback(ctx))

	verifier := suite.factory.Create()
	_, err := verifier.OrderRepository().Get(ctx, 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WorkWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder(1)))

	loaded, err := uow.OrderRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(uint64(1), loaded.ID())
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
