package commands

import (
	"context"
	"errors"
	"sort"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// AssignOrdersCommandHandler orchestrates order assignment per courier.
//
// The courier's latest shipment drives the state machine: while it is still
// open the handler only reports its remaining orders, and a new shipment is
// created only when the previous one has been closed. The bag-packing
// decision is made once, at shipment creation, and is not re-optimized on
// later calls.
//
// Example:
//
//	handler := NewAssignOrdersCommandHandler(uowFactory)
//	cmd, _ := NewAssignOrdersCommand(courierID, time.Now())
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown courier
//	    return
//	}
//	if result.AssignTime == nil {
//	    // nothing to carry right now
//	}
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrdersCommandHandler creates a handler for order assignment.
func NewAssignOrdersCommandHandler(uowFactory UoWFactory) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command within a single transaction.
// Returns the courier's current batch: either the open orders of an active
// shipment, or a freshly packed one. Packing an empty bag creates nothing
// and returns an empty result.
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, cmd AssignOrdersCommand) (AssignOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierEntity, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	active, err := uow.ShipmentRepository().GetActiveByCourier(ctx, cmd.CourierID())
	switch {
	case err == nil:
		result, snapshotErr := h.activeShipmentSnapshot(ctx, uow, active)
		if snapshotErr != nil {
			return AssignOrdersResult{}, snapshotErr
		}
		if err = uow.Commit(ctx); err != nil {
			return AssignOrdersResult{}, err
		}
		return result, nil
	case errors.Is(err, errs.ErrObjectNotFound):
		// no active shipment, pack a new one
	default:
		return AssignOrdersResult{}, err
	}

	pool, err := uow.OrderRepository().GetAllUnassigned(ctx)
	if err != nil {
		return AssignOrdersResult{}, err
	}

	bag, err := services.NewBagPacker().Pack(courierEntity, pool)
	if err != nil {
		return AssignOrdersResult{}, err
	}

	if bag.Len() == 0 {
		if err = uow.Commit(ctx); err != nil {
			return AssignOrdersResult{}, err
		}
		return AssignOrdersResult{OrderIDs: []uint64{}}, nil
	}

	newShipment, err := shipment.NewShipment(courierEntity.ID(), courierEntity.Type().Code(), cmd.Now())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return AssignOrdersResult{}, err
	}

	bagged := make([]*order.Order, 0, bag.Len())
	for _, o := range pool {
		if !bag.Contains(o.ID()) {
			continue
		}
		if err = o.AssignToShipment(newShipment.ID()); err != nil {
			return AssignOrdersResult{}, err
		}
		bagged = append(bagged, o)
	}

	if err = uow.OrderRepository().UpdateAll(ctx, bagged); err != nil {
		return AssignOrdersResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	assignTime := newShipment.AssignTime()
	return AssignOrdersResult{
		OrderIDs:   bag.OrderIDs(),
		AssignTime: &assignTime,
	}, nil
}

// activeShipmentSnapshot returns the open orders of the shipment the
// courier is already carrying.
func (h AssignOrdersCommandHandler) activeShipmentSnapshot(
	ctx context.Context,
	uow UoW,
	active *shipment.Shipment,
) (AssignOrdersResult, error) {
	open, err := uow.OrderRepository().GetOpenByShipment(ctx, active.ID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	ids := make([]uint64, 0, len(open))
	for _, o := range open {
		ids = append(ids, o.ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	assignTime := active.AssignTime()
	return AssignOrdersResult{
		OrderIDs:   ids,
		AssignTime: &assignTime,
	}, nil
}
