package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCourierEarningsQueryIsNotConstructed = errors.New(
	"CourierEarningsQuery must be created via NewCourierEarningsQuery constructor",
)

// CourierEarningsQuery computes the courier's earnings over the completed
// shipments.
type CourierEarningsQuery struct {
	courierID uint64

	guard guard.ConstructorGuard
}

// NewCourierEarningsQuery creates a query to compute the courier's earnings.
func NewCourierEarningsQuery(courierID uint64) (CourierEarningsQuery, error) {
	if courierID == 0 {
		return CourierEarningsQuery{}, errs.NewValueIsRequiredError("courierID")
	}
	return CourierEarningsQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CourierEarningsQuery) Validate() error {
	return q.guard.Validate(ErrCourierEarningsQueryIsNotConstructed)
}

// CourierID returns the courier id from the query.
func (q CourierEarningsQuery) CourierID() uint64 {
	return q.courierID
}
