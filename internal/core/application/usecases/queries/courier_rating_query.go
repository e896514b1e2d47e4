package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCourierRatingQueryIsNotConstructed = errors.New(
	"CourierRatingQuery must be created via NewCourierRatingQuery constructor",
)

// CourierRatingQuery computes the courier's delivery-speed rating over the
// completed shipments.
type CourierRatingQuery struct {
	courierID uint64

	guard guard.ConstructorGuard
}

// NewCourierRatingQuery creates a query to compute the courier's rating.
func NewCourierRatingQuery(courierID uint64) (CourierRatingQuery, error) {
	if courierID == 0 {
		return CourierRatingQuery{}, errs.NewValueIsRequiredError("courierID")
	}
	return CourierRatingQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CourierRatingQuery) Validate() error {
	return q.guard.Validate(ErrCourierRatingQueryIsNotConstructed)
}

// CourierID returns the courier id from the query.
func (q CourierRatingQuery) CourierID() uint64 {
	return q.courierID
}
