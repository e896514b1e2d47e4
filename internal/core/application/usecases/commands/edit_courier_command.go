package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrEditCourierCommandIsNotConstructed = errors.New(
	"EditCourierCommand must be created via NewEditCourierCommand constructor",
)

// EditCourierCommand represents a request to change a courier's transport
// type, served regions, or work shifts. Each field is optional: an empty
// value means the field keeps its prior value, so a caller cannot clear a
// region or shift set through this command.
type EditCourierCommand struct { //nolint:recvcheck //using for validation
	courierID uint64
	typeCode  string
	regionIDs []uint64
	shifts    []kernel.TimeInterval

	guard guard.ConstructorGuard
}

// NewEditCourierCommand creates a command to edit the courier. Empty
// typeCode, regionIDs, or shifts leave the corresponding field unchanged.
func NewEditCourierCommand(
	courierID uint64,
	typeCode string,
	regionIDs []uint64,
	shifts []kernel.TimeInterval,
) (EditCourierCommand, error) {
	command := EditCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setShifts(shifts),
	); err != nil {
		return EditCourierCommand{}, err
	}

	command.typeCode = typeCode
	command.regionIDs = regionIDs
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EditCourierCommand) Validate() error {
	return c.guard.Validate(ErrEditCourierCommandIsNotConstructed)
}

// CourierID returns the courier id from the command.
func (c EditCourierCommand) CourierID() uint64 {
	return c.courierID
}

// TypeCode returns the new transport type code, empty when unchanged.
func (c EditCourierCommand) TypeCode() string {
	return c.typeCode
}

// RegionIDs returns the new region set, empty when unchanged.
func (c EditCourierCommand) RegionIDs() []uint64 {
	return c.regionIDs
}

// Shifts returns the new shift set, empty when unchanged.
func (c EditCourierCommand) Shifts() []kernel.TimeInterval {
	return c.shifts
}

func (c *EditCourierCommand) setCourierID(courierID uint64) error {
	if courierID == 0 {
		return errs.NewValueIsRequiredError("courierID")
	}

	c.courierID = courierID
	return nil
}

func (c *EditCourierCommand) setShifts(shifts []kernel.TimeInterval) error {
	for _, shift := range shifts {
		if err := shift.Validate(); err != nil {
			return err
		}
	}

	c.shifts = shifts
	return nil
}
