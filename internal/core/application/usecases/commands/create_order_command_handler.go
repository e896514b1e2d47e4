package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order registration.
// New orders enter the unassigned pool and stay there until a shipment
// picks them up.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// A duplicate order id surfaces as a Conflict error from the repository.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderEntity, err := order.NewOrder(cmd.OrderID(), cmd.Weight(), cmd.RegionID(), cmd.DeliveryIntervals())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
