package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCourierQueryHandler retrieves a single courier read model.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for single-courier queries.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFoundError when the
// courier does not exist.
func (h GetCourierQueryHandler) Handle(ctx context.Context, query GetCourierQuery) (CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierResponse{}, err
	}

	var courier CourierResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.type_code,
			t.capacity
		FROM couriers c
		JOIN courier_types t ON t.code = c.type_code
		WHERE c.id = ?
	`, query.CourierID()).Row()

	if err := row.Scan(&courier.ID, &courier.TypeCode, &courier.Capacity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return CourierResponse{}, errs.NewObjectNotFoundError("courierID", query.CourierID())
		}
		return CourierResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT region_id
		FROM courier_regions
		WHERE courier_id = ?
		ORDER BY region_id
	`, query.CourierID()).Rows()
	if err != nil {
		return CourierResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var regionID uint64
		if err = rows.Scan(&regionID); err != nil {
			return CourierResponse{}, err
		}
		courier.RegionIDs = append(courier.RegionIDs, regionID)
	}
	if err = rows.Err(); err != nil {
		return CourierResponse{}, err
	}

	shiftRows, err := h.db.WithContext(ctx).Raw(`
		SELECT start_time, end_time
		FROM courier_shifts
		WHERE courier_id = ?
		ORDER BY start_time
	`, query.CourierID()).Rows()
	if err != nil {
		return CourierResponse{}, err
	}
	defer shiftRows.Close()

	for shiftRows.Next() {
		var start, end string
		if err = shiftRows.Scan(&start, &end); err != nil {
			return CourierResponse{}, err
		}
		courier.Shifts = append(courier.Shifts, fmt.Sprintf("%s-%s", start, end))
	}
	if err = shiftRows.Err(); err != nil {
		return CourierResponse{}, err
	}

	return courier, nil
}
