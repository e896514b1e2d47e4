package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// EditCourierCommandHandler applies courier edits and re-validates the
// courier's active shipment against the changed capacity, regions, and
// shifts. Orders that no longer fit are returned to the unassigned pool in
// the same transaction; the shipment itself stays open even when every
// order is evicted.
//
// Example:
//
//	handler := NewEditCourierCommandHandler(uowFactory)
//	cmd, _ := NewEditCourierCommand(courierID, "foot", nil, nil)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // concurrent edit raced on a uniqueness constraint
//	}
type EditCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewEditCourierCommandHandler creates a handler for courier edits.
func NewEditCourierCommandHandler(uowFactory UoWFactory) EditCourierCommandHandler {
	return EditCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the requested edits and evicts non-fitting orders from the
// active shipment, all within one transaction. Returns the updated courier.
func (h EditCourierCommandHandler) Handle(ctx context.Context, cmd EditCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	courierEntity, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = h.applyEdits(ctx, uow, courierEntity, cmd); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return nil, err
	}

	if err = h.revalidateActiveShipment(ctx, uow, courierEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return courierEntity, nil
}

// applyEdits mutates the courier in place, skipping fields the command left
// empty.
func (h EditCourierCommandHandler) applyEdits(
	ctx context.Context,
	uow UoW,
	courierEntity *courier.Courier,
	cmd EditCourierCommand,
) error {
	if cmd.TypeCode() != "" {
		courierType, err := uow.CourierRepository().GetType(ctx, cmd.TypeCode())
		if err != nil {
			return err
		}
		if err = courierEntity.SetType(courierType); err != nil {
			return err
		}
	}

	if len(cmd.RegionIDs()) > 0 {
		if err := courierEntity.SetRegions(cmd.RegionIDs()); err != nil {
			return err
		}
	}

	if len(cmd.Shifts()) > 0 {
		if err := courierEntity.SetShifts(cmd.Shifts()); err != nil {
			return err
		}
	}

	return nil
}

// revalidateActiveShipment re-packs the courier's open orders and unassigns
// every order that fell out of the bag. Completed orders are never touched.
func (h EditCourierCommandHandler) revalidateActiveShipment(
	ctx context.Context,
	uow UoW,
	courierEntity *courier.Courier,
) error {
	active, err := uow.ShipmentRepository().GetActiveByCourier(ctx, courierEntity.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	open, err := uow.OrderRepository().GetOpenByShipment(ctx, active.ID())
	if err != nil {
		return err
	}

	bag, err := services.NewBagPacker().Pack(courierEntity, open)
	if err != nil {
		return err
	}

	evicted := make([]*order.Order, 0, len(open))
	for _, o := range open {
		if bag.Contains(o.ID()) {
			continue
		}
		if err = o.Unassign(); err != nil {
			return err
		}
		evicted = append(evicted, o)
	}

	if len(evicted) == 0 {
		return nil
	}

	return uow.OrderRepository().UpdateAll(ctx, evicted)
}
