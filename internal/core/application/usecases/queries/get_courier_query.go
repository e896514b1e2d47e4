package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierQueryIsNotConstructed = errors.New(
	"GetCourierQuery must be created via NewGetCourierQuery constructor",
)

// GetCourierQuery retrieves a single courier by id.
type GetCourierQuery struct {
	courierID uint64

	guard guard.ConstructorGuard
}

// NewGetCourierQuery creates a query to retrieve the courier.
func NewGetCourierQuery(courierID uint64) (GetCourierQuery, error) {
	if courierID == 0 {
		return GetCourierQuery{}, errs.NewValueIsRequiredError("courierID")
	}
	return GetCourierQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CourierID returns the courier id from the query.
func (q GetCourierQuery) CourierID() uint64 {
	return q.courierID
}
