package queries

import (
	"context"

	"dispatch/internal/core/domain/model/courier"

	"gorm.io/gorm"
)

const earningsRate = 500

// CourierEarningsQueryHandler computes a courier's earnings from its
// completed shipments. Each shipment pays the flat rate multiplied by the
// coefficient of the transport type frozen at assignment, so later courier
// edits never change past pay.
type CourierEarningsQueryHandler struct {
	db *gorm.DB
}

// NewCourierEarningsQueryHandler creates a handler for earnings queries.
func NewCourierEarningsQueryHandler(db *gorm.DB) CourierEarningsQueryHandler {
	return CourierEarningsQueryHandler{db: db}
}

// Handle executes the earnings query.
// Returns nil when the courier has no completed shipments.
func (h CourierEarningsQueryHandler) Handle(ctx context.Context, query CourierEarningsQuery) (*int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipmentCounts := make(map[string]int64)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT courier_type_code, COUNT(*)
		FROM shipments
		WHERE courier_id = ? AND complete_time IS NOT NULL
		GROUP BY courier_type_code
	`, query.CourierID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		var count int64
		if err = rows.Scan(&code, &count); err != nil {
			return nil, err
		}
		shipmentCounts[code] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return computeEarnings(shipmentCounts), nil
}

// computeEarnings sums the per-type shipment counts weighted by transport
// coefficients, or nil when no shipments were completed. Unknown type
// codes weigh 0.
func computeEarnings(shipmentCounts map[string]int64) *int64 {
	if len(shipmentCounts) == 0 {
		return nil
	}

	var total int64
	for code, count := range shipmentCounts {
		total += earningsRate * courier.EarningsCoefficientForCode(code) * count
	}
	return &total
}
