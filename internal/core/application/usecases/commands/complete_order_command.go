package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a request to mark an order delivered at a
// given moment.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      uint64
	completeTime time.Time

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete the order.
func NewCompleteOrderCommand(orderID uint64, completeTime time.Time) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCompleteTime(completeTime),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order id from the command.
func (c CompleteOrderCommand) OrderID() uint64 {
	return c.orderID
}

// CompleteTime returns the delivery moment from the command.
func (c CompleteOrderCommand) CompleteTime() time.Time {
	return c.completeTime
}

func (c *CompleteOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setCompleteTime(completeTime time.Time) error {
	if completeTime.IsZero() {
		return errs.NewValueIsRequiredError("completeTime")
	}

	c.completeTime = completeTime
	return nil
}
