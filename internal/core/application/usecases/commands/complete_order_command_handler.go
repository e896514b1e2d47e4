package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler marks a single order delivered and closes the
// shipment when that order was the last open one. Completing an already
// completed order is a safe no-op.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command within a single transaction.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if orderEntity.IsCompleted() {
		return uow.Commit(ctx)
	}

	shipmentID := orderEntity.ShipmentID()
	if shipmentID == nil {
		return order.ErrOrderNotAssigned
	}

	open, err := orderRepo.GetOpenByShipment(ctx, *shipmentID)
	if err != nil {
		return err
	}

	// The order itself is still open, so a count of one means it is the
	// last one and the whole shipment is done.
	if len(open) == 1 {
		shipmentEntity, shipErr := uow.ShipmentRepository().Get(ctx, *shipmentID)
		if shipErr != nil {
			return shipErr
		}
		if shipErr = shipmentEntity.Close(cmd.CompleteTime()); shipErr != nil {
			return shipErr
		}
		if shipErr = uow.ShipmentRepository().Update(ctx, shipmentEntity); shipErr != nil {
			return shipErr
		}
	}

	if err = orderEntity.Complete(cmd.CompleteTime()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
