package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id any, aggregate any) {
	m.Called(id, aggregate)
}

// CourierRepositoryIntegrationTestSuite provides integration tests for
// CourierRepository using PostgreSQL containers.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
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
	))

	types := []courierrepo.CourierTypeDTO{
		{Code: "foot", Capacity: decimal.NewFromInt(10)},
		{Code: "bike", Capacity: decimal.NewFromInt(15)},
		{Code: "car", Capacity: decimal.NewFromInt(50)},
	}
	suite.Require().NoError(db.Create(&types).Error)
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE courier_regions, courier_shifts, couriers, regions").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return().Maybe()
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) createTestCourier(id uint64) *courier.Courier {
	courierType, err := suite.repository.GetType(context.Background(), "bike")
	suite.Require().NoError(err)

	shift, err := kernel.ParseTimeInterval("08:00-12:00")
	suite.Require().NoError(err)

	c, err := courier.NewCourier(id, courierType, []uint64{1, 2}, []kernel.TimeInterval{shift})
	suite.Require().NoError(err)
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	c := suite.createTestCourier(1)

	suite.Require().NoError(suite.repository.Add(ctx, c))

	loaded, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(uint64(1), loaded.ID())
	suite.Equal("bike", loaded.Type().Code())
	suite.True(loaded.Capacity().IsEqual(c.Capacity()))
	suite.ElementsMatch([]uint64{1, 2}, loaded.RegionIDs())
	suite.Require().Len(loaded.Shifts(), 1)
	suite.Equal("08:00-12:00", loaded.Shifts()[0].String())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_CreatesRegionsLazily() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCourier(1)))

	var count int64
	suite.Require().NoError(suite.db.Table("regions").Count(&count).Error)
	suite.EqualValues(2, count)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_DuplicateID_Conflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCourier(1)))

	err := suite.repository.Add(ctx, suite.createTestCourier(1))
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 404)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetType_NotFound() {
	_, err := suite.repository.GetType(context.Background(), "scooter")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_ReplacesRegionAndShiftSets() {
	ctx := context.Background()
	c := suite.createTestCourier(1)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	newShift, err := kernel.ParseTimeInterval("14:00-18:00")
	suite.Require().NoError(err)
	suite.Require().NoError(c.SetRegions([]uint64{3}))
	suite.Require().NoError(c.SetShifts([]kernel.TimeInterval{newShift}))

	carType, err := suite.repository.GetType(ctx, "car")
	suite.Require().NoError(err)
	suite.Require().NoError(c.SetType(carType))

	suite.Require().NoError(suite.repository.Update(ctx, c))

	loaded, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("car", loaded.Type().Code())
	suite.Equal([]uint64{3}, loaded.RegionIDs())
	suite.Require().Len(loaded.Shifts(), 1)
	suite.Equal("14:00-18:00", loaded.Shifts()[0].String())

	// the old region links are gone, not merged
	var count int64
	suite.Require().NoError(suite.db.Table("courier_regions").Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	err := suite.repository.Update(context.Background(), suite.createTestCourier(404))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAll() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCourier(2)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCourier(1)))

	couriers, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(couriers, 2)
	suite.Equal(uint64(1), couriers[0].ID())
	suite.Equal(uint64(2), couriers[1].ID())
}

func TestCourierRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
