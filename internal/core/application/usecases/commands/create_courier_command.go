package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a new courier.
// The courier id comes from the caller, the transport type is referenced by
// code, and capacity is resolved from the stored type reference data.
//
// Example:
//
//	shift, _ := kernel.ParseTimeInterval("08:00-12:00")
//	cmd, err := NewCreateCourierCommand(1, "bike", []uint64{1, 2}, []kernel.TimeInterval{shift})
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID uint64
	typeCode  string
	regionIDs []uint64
	shifts    []kernel.TimeInterval

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Validates that the id is set, the type code is not empty, and the region
// and shift sets are not empty.
func NewCreateCourierCommand(
	courierID uint64,
	typeCode string,
	regionIDs []uint64,
	shifts []kernel.TimeInterval,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setTypeCode(typeCode),
		command.setRegionIDs(regionIDs),
		command.setShifts(shifts),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the courier id from the command.
func (c CreateCourierCommand) CourierID() uint64 {
	return c.courierID
}

// TypeCode returns the transport type code from the command.
func (c CreateCourierCommand) TypeCode() string {
	return c.typeCode
}

// RegionIDs returns the served region ids from the command.
func (c CreateCourierCommand) RegionIDs() []uint64 {
	return c.regionIDs
}

// Shifts returns the work shifts from the command.
func (c CreateCourierCommand) Shifts() []kernel.TimeInterval {
	return c.shifts
}

func (c *CreateCourierCommand) setCourierID(courierID uint64) error {
	if courierID == 0 {
		return errs.NewValueIsRequiredError("courierID")
	}

	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setTypeCode(typeCode string) error {
	if typeCode == "" {
		return errs.NewValueIsRequiredError("typeCode")
	}

	c.typeCode = typeCode
	return nil
}

func (c *CreateCourierCommand) setRegionIDs(regionIDs []uint64) error {
	if len(regionIDs) == 0 {
		return errs.NewValueIsRequiredError("regionIDs")
	}

	c.regionIDs = regionIDs
	return nil
}

func (c *CreateCourierCommand) setShifts(shifts []kernel.TimeInterval) error {
	if len(shifts) == 0 {
		return errs.NewValueIsRequiredError("shifts")
	}

	for _, shift := range shifts {
		if err := shift.Validate(); err != nil {
			return err
		}
	}

	c.shifts = shifts
	return nil
}
