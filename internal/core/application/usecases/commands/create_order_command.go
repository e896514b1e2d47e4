package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order awaiting
// assignment.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           uint64
	weight            kernel.Weight
	regionID          uint64
	deliveryIntervals []kernel.TimeInterval

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
func NewCreateOrderCommand(
	orderID uint64,
	weight kernel.Weight,
	regionID uint64,
	deliveryIntervals []kernel.TimeInterval,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setWeight(weight),
		command.setRegionID(regionID),
		command.setDeliveryIntervals(deliveryIntervals),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the order id from the command.
func (c CreateOrderCommand) OrderID() uint64 {
	return c.orderID
}

// Weight returns the order weight from the command.
func (c CreateOrderCommand) Weight() kernel.Weight {
	return c.weight
}

// RegionID returns the destination region id from the command.
func (c CreateOrderCommand) RegionID() uint64 {
	return c.regionID
}

// DeliveryIntervals returns the acceptable delivery windows from the command.
func (c CreateOrderCommand) DeliveryIntervals() []kernel.TimeInterval {
	return c.deliveryIntervals
}

func (c *CreateOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setRegionID(regionID uint64) error {
	if regionID == 0 {
		return errs.NewValueIsRequiredError("regionID")
	}

	c.regionID = regionID
	return nil
}

func (c *CreateOrderCommand) setDeliveryIntervals(intervals []kernel.TimeInterval) error {
	if len(intervals) == 0 {
		return errs.NewValueIsRequiredError("deliveryIntervals")
	}

	for _, interval := range intervals {
		if err := interval.Validate(); err != nil {
			return err
		}
	}

	c.deliveryIntervals = intervals
	return nil
}
