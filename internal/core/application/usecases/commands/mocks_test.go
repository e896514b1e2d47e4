package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Add(ctx context.Context, courier *courier.Courier) error {
	args := m.Called(ctx, courier)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, courier *courier.Courier) error {
	args := m.Called(ctx, courier)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id uint64) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetType(ctx context.Context, code string) (courier.Type, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(courier.Type), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateAll(ctx context.Context, aggregates []*order.Order) error {
	args := m.Called(ctx, aggregates)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOpenByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, shipmentID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetActiveByCourier(ctx context.Context, courierID uint64) (*shipment.Shipment, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllCompletedByCourier(ctx context.Context, courierID uint64) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, courierID)
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCourierUoWFactory struct {
	mock.Mock
}

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// Fixture helpers shared across handler tests.

func mustInterval(t *testing.T, s string) kernel.TimeInterval {
	t.Helper()
	interval, err := kernel.ParseTimeInterval(s)
	require.NoError(t, err)
	return interval
}

func mustWeight(t *testing.T, s string) kernel.Weight {
	t.Helper()
	w, err := kernel.ParseWeight(s)
	require.NoError(t, err)
	return w
}

func mustType(t *testing.T, code, capacity string) courier.Type {
	t.Helper()
	courierType, err := courier.NewType(code, mustWeight(t, capacity))
	require.NoError(t, err)
	return courierType
}

func mustCourier(t *testing.T, id uint64, capacity string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(
		id,
		mustType(t, "foot", capacity),
		[]uint64{1},
		[]kernel.TimeInterval{mustInterval(t, "08:00-12:00")},
	)
	require.NoError(t, err)
	return c
}
