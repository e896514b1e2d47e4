package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model with shipment
// context attached.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFoundError when the
// order does not exist. Shipment fields stay nil for unassigned orders.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var orderResp OrderResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.weight,
			o.region_id,
			o.complete_time,
			o.shipment_id,
			s.courier_id,
			s.assign_time
		FROM orders o
		LEFT JOIN shipments s ON s.id = o.shipment_id
		WHERE o.id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&orderResp.ID,
		&orderResp.Weight,
		&orderResp.RegionID,
		&orderResp.CompleteTime,
		&orderResp.ShipmentID,
		&orderResp.ShipmentCourierID,
		&orderResp.ShipmentAssignTime,
	)
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return orderResp, nil
}
