package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler handles the business logic for courier registration.
// Resolves the transport type from reference data and persists the new
// courier with its regions and shifts.
//
// Example:
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	cmd, _ := NewCreateCourierCommand(1, "bike", regions, shifts)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("courier registration failed: %w", err)
//	}
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
// Requires a CourierUoWFactory for transactional persistence operations.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier creation command.
// Creates a new courier aggregate and persists it within a transaction.
// A duplicate courier id surfaces as a Conflict error from the repository.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
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

	courierRepo := uow.CourierRepository()

	courierType, err := courierRepo.GetType(ctx, cmd.TypeCode())
	if err != nil {
		return err
	}

	courierEntity, err := courier.NewCourier(cmd.CourierID(), courierType, cmd.RegionIDs(), cmd.Shifts())
	if err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
