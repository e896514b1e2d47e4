package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand represents a request to hand a courier a new batch of
// orders, or to return the batch the courier is already carrying.
// The assignment moment is supplied by the caller so that the decision is
// reproducible.
type AssignOrdersCommand struct { //nolint:recvcheck //using for validation
	courierID uint64
	now       time.Time

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a command to assign orders to the courier.
func NewAssignOrdersCommand(courierID uint64, now time.Time) (AssignOrdersCommand, error) {
	command := AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setNow(now),
	); err != nil {
		return AssignOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// CourierID returns the courier id from the command.
func (c AssignOrdersCommand) CourierID() uint64 {
	return c.courierID
}

// Now returns the assignment moment from the command.
func (c AssignOrdersCommand) Now() time.Time {
	return c.now
}

func (c *AssignOrdersCommand) setCourierID(courierID uint64) error {
	if courierID == 0 {
		return errs.NewValueIsRequiredError("courierID")
	}

	c.courierID = courierID
	return nil
}

func (c *AssignOrdersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}

// AssignOrdersResult is the outcome of an assignment request: the order ids
// the courier is carrying, sorted ascending, and the time the batch was
// assigned. AssignTime is nil when nothing could be assigned.
type AssignOrdersResult struct {
	OrderIDs   []uint64
	AssignTime *time.Time
}
