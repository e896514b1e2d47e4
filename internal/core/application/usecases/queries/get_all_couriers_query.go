// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllCouriersQueryIsNotConstructed = errors.New(
	"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
)

// GetAllCouriersQuery retrieves information about all couriers in the system.
//
// Example:
//
//	query := NewGetAllCouriersQuery()
//	handler := NewGetAllCouriersQueryHandler(db)
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCouriersQuery creates a query to retrieve all couriers.
// This is a parameterless query that fetches the complete courier list.
func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// CourierResponse represents courier information in the read model.
// Shifts are formatted as "HH:MM-HH:MM" strings.
type CourierResponse struct {
	ID        uint64
	TypeCode  string
	Capacity  decimal.Decimal
	RegionIDs []uint64
	Shifts    []string
}
