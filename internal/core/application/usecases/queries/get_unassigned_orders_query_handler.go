package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves the unassigned order pool from
// the database. Orders leave the result set as soon as a shipment picks
// them up.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for unassigned order queries.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unassigned orders.
// Results are sorted by order id for consistent output.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]UnassignedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]UnassignedOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			weight,
			region_id
		FROM orders
		WHERE shipment_id IS NULL AND complete_time IS NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp UnassignedOrderResponse
		if err = rows.Scan(&orderResp.ID, &orderResp.Weight, &orderResp.RegionID); err != nil {
			return nil, err
		}
		orders = append(orders, orderResp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
