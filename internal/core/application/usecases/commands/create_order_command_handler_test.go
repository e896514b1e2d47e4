package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderUoWMocks(t *testing.T) (*MockOrderRepository, *MockOrderUoWFactory) {
	t.Helper()

	orderRepo := new(MockOrderRepository)

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	return orderRepo, factory
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	intervals := []kernel.TimeInterval{mustInterval(t, "09:00-11:00")}

	cmd, err := commands.NewCreateOrderCommand(1, mustWeight(t, "0.23"), 2, intervals)
	require.NoError(t, err)

	orderRepo, factory := newOrderUoWMocks(t)

	var created *order.Order
	orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		created = o
		return true
	})).Return(nil)

	handler := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, created)
	require.NoError(t, created.Validate())
	assert.Equal(t, uint64(1), created.ID())
	assert.Equal(t, "0.23", created.Weight().String())
	assert.False(t, created.IsAssigned())
}

func TestCreateOrderCommandHandler_Handle_DuplicateID(t *testing.T) {
	ctx := t.Context()
	intervals := []kernel.TimeInterval{mustInterval(t, "09:00-11:00")}

	cmd, err := commands.NewCreateOrderCommand(1, mustWeight(t, "0.23"), 2, intervals)
	require.NoError(t, err)

	orderRepo, factory := newOrderUoWMocks(t)
	orderRepo.On("Add", ctx, mock.Anything).Return(errs.NewConflictError("orderID"))

	handler := commands.NewCreateOrderCommandHandler(factory)
	require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrConflict)
}

func TestCreateOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)

	err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertExpectations(t)
}
