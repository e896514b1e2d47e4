package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its shipment context.
// Callers use it to check courier consistency and the shipment's assign
// time before completing an order.
type GetOrderQuery struct {
	orderID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the order.
func NewGetOrderQuery(orderID uint64) (GetOrderQuery, error) {
	if orderID == 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order id from the query.
func (q GetOrderQuery) OrderID() uint64 {
	return q.orderID
}

// OrderResponse represents an order and, when assigned, the shipment
// carrying it.
type OrderResponse struct {
	ID           uint64
	Weight       decimal.Decimal
	RegionID     uint64
	CompleteTime *time.Time

	ShipmentID         *uuid.UUID
	ShipmentCourierID  *uint64
	ShipmentAssignTime *time.Time
}
