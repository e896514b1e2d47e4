package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler retrieves all courier information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for courier retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all couriers.
// Returns a slice of courier read models sorted by id, each with its
// regions and shifts attached.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]CourierResponse, 0)
	byID := make(map[uint64]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.type_code,
			t.capacity
		FROM couriers c
		JOIN courier_types t ON t.code = c.type_code
		ORDER BY c.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var courier CourierResponse
		if err = rows.Scan(&courier.ID, &courier.TypeCode, &courier.Capacity); err != nil {
			return nil, err
		}
		byID[courier.ID] = len(couriers)
		couriers = append(couriers, courier)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachRegions(ctx, couriers, byID); err != nil {
		return nil, err
	}
	if err = h.attachShifts(ctx, couriers, byID); err != nil {
		return nil, err
	}

	return couriers, nil
}

func (h GetAllCouriersQueryHandler) attachRegions(
	ctx context.Context,
	couriers []CourierResponse,
	byID map[uint64]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT courier_id, region_id
		FROM courier_regions
		ORDER BY courier_id, region_id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var courierID, regionID uint64
		if err = rows.Scan(&courierID, &regionID); err != nil {
			return err
		}
		if i, ok := byID[courierID]; ok {
			couriers[i].RegionIDs = append(couriers[i].RegionIDs, regionID)
		}
	}
	return rows.Err()
}

func (h GetAllCouriersQueryHandler) attachShifts(
	ctx context.Context,
	couriers []CourierResponse,
	byID map[uint64]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT courier_id, start_time, end_time
		FROM courier_shifts
		ORDER BY courier_id, start_time
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var courierID uint64
		var start, end string
		if err = rows.Scan(&courierID, &start, &end); err != nil {
			return err
		}
		if i, ok := byID[courierID]; ok {
			couriers[i].Shifts = append(couriers[i].Shifts, fmt.Sprintf("%s-%s", start, end))
		}
	}
	return rows.Err()
}
