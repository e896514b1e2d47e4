package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery retrieves the orders still waiting for a
// shipment.
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query to retrieve the unassigned pool.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// UnassignedOrderResponse represents a waiting order in the read model.
type UnassignedOrderResponse struct {
	ID       uint64
	Weight   decimal.Decimal
	RegionID uint64
}
