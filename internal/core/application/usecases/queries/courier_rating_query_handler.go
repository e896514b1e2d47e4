package queries

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const bestDurationCeiling = 3600.0

// CourierRatingQueryHandler computes a courier's rating from the delivery
// durations of its completed shipments.
//
// For the first order completed in a shipment the duration runs from the
// shipment's assign time; for each subsequent order, from the previous
// order's completion. Durations are averaged per region, the fastest
// region wins, and the rating scales that average into [0, 5]: an hour or
// more averages to 0, instant delivery to 5.
type CourierRatingQueryHandler struct {
	db *gorm.DB
}

// NewCourierRatingQueryHandler creates a handler for rating queries.
func NewCourierRatingQueryHandler(db *gorm.DB) CourierRatingQueryHandler {
	return CourierRatingQueryHandler{db: db}
}

// Handle executes the rating query.
// Returns nil when the courier has no completed shipments.
func (h CourierRatingQueryHandler) Handle(ctx context.Context, query CourierRatingQuery) (*float64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]completedDelivery, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.assign_time,
			o.id,
			o.region_id,
			o.complete_time
		FROM shipments s
		JOIN orders o ON o.shipment_id = s.id
		WHERE s.courier_id = ?
		  AND s.complete_time IS NOT NULL
		  AND o.complete_time IS NOT NULL
		ORDER BY s.id, o.complete_time, o.id
	`, query.CourierID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d completedDelivery
		err = rows.Scan(&d.ShipmentID, &d.AssignTime, &d.OrderID, &d.RegionID, &d.CompleteTime)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return computeRating(deliveries), nil
}

// completedDelivery is one completed order inside a completed shipment.
// Rows must arrive grouped by shipment and ordered by completion time,
// with order id as the tie-break.
type completedDelivery struct {
	ShipmentID   uuid.UUID
	AssignTime   time.Time
	OrderID      uint64
	RegionID     uint64
	CompleteTime time.Time
}

// computeRating folds delivery durations into a 0..5 score, or nil when
// there are no completed deliveries.
func computeRating(deliveries []completedDelivery) *float64 {
	if len(deliveries) == 0 {
		return nil
	}

	type regionStat struct {
		total float64
		count int
	}
	byRegion := make(map[uint64]*regionStat)

	var prevShipment uuid.UUID
	var prevTime time.Time
	for _, d := range deliveries {
		if d.ShipmentID != prevShipment {
			prevShipment = d.ShipmentID
			prevTime = d.AssignTime
		}

		duration := d.CompleteTime.Sub(prevTime).Seconds()
		prevTime = d.CompleteTime

		stat, ok := byRegion[d.RegionID]
		if !ok {
			stat = &regionStat{}
			byRegion[d.RegionID] = stat
		}
		stat.total += duration
		stat.count++
	}

	best := math.MaxFloat64
	for _, stat := range byRegion {
		avg := stat.total / float64(stat.count)
		if avg < best {
			best = avg
		}
	}

	rating := (bestDurationCeiling - math.Min(best, bestDurationCeiling)) / bestDurationCeiling * 5
	rating = math.Round(rating*100) / 100
	return &rating
}
