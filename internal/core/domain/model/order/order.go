package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderAlreadyAssigned is returned when assigning an order that is already
	// carried by another shipment.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned to a shipment")
	// ErrOrderAlreadyCompleted is returned when mutating an order after delivery.
	ErrOrderAlreadyCompleted = errors.New("order is already completed")
	// ErrOrderNotAssigned is returned when completing an order that has no shipment.
	ErrOrderNotAssigned = errors.New("order is not assigned to a shipment")
)

// Order represents a delivery order in the system.
// It is an aggregate root holding the order's weight, destination region,
// acceptable delivery windows, and its position in the shipment lifecycle:
// available (no shipment), assigned (carried by a shipment), or completed.
type Order struct {
	// id is the externally assigned numeric identifier
	id uint64
	// weight is the order weight in kilograms
	weight kernel.Weight
	// regionID is the destination region
	regionID uint64
	// deliveryIntervals are the windows during which delivery is acceptable
	deliveryIntervals []kernel.TimeInterval
	// shipmentID references the shipment currently carrying the order, nil if available
	shipmentID *uuid.UUID
	// completeTime is the delivery timestamp, nil until delivered
	completeTime *time.Time
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new, unassigned Order.
//
// Returns:
//   - *Order: a fully initialized order in the available pool
//   - error: validation error if any parameter is invalid
func NewOrder(id uint64, weight kernel.Weight, regionID uint64, deliveryIntervals []kernel.TimeInterval) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setWeight(weight),
		order.setRegionID(regionID),
		order.setDeliveryIntervals(deliveryIntervals),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its shipment reference and completion time.
//
// Business rules:
//   - A completed order must reference a shipment
func RestoreOrder(
	id uint64,
	weight kernel.Weight,
	regionID uint64,
	deliveryIntervals []kernel.TimeInterval,
	shipmentID *uuid.UUID,
	completeTime *time.Time,
) (*Order, error) {
	order, err := NewOrder(id, weight, regionID, deliveryIntervals)
	if err != nil {
		return nil, err
	}

	if completeTime != nil && shipmentID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order state",
			errors.New("completed order has no shipment"),
		)
	}

	if shipmentID != nil {
		sid := *shipmentID
		order.shipmentID = &sid
	}
	if completeTime != nil {
		ct := *completeTime
		order.completeTime = &ct
	}

	return order, nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// Validate checks if the Order was properly constructed via NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's externally assigned identifier.
func (o *Order) ID() uint64 {
	return o.id
}

// Weight returns the order weight in kilograms.
func (o *Order) Weight() kernel.Weight {
	return o.weight
}

// RegionID returns the destination region.
func (o *Order) RegionID() uint64 {
	return o.regionID
}

// DeliveryIntervals returns the acceptable delivery windows.
// The returned slice is a copy to prevent external modification.
func (o *Order) DeliveryIntervals() []kernel.TimeInterval {
	out := make([]kernel.TimeInterval, len(o.deliveryIntervals))
	copy(out, o.deliveryIntervals)
	return out
}

// ShipmentID returns the id of the shipment carrying the order, or nil
// when the order is in the available pool.
func (o *Order) ShipmentID() *uuid.UUID {
	if o.shipmentID == nil {
		return nil
	}
	sid := *o.shipmentID
	return &sid
}

// CompleteTime returns the delivery timestamp, or nil until delivered.
func (o *Order) CompleteTime() *time.Time {
	if o.completeTime == nil {
		return nil
	}
	ct := *o.completeTime
	return &ct
}

// IsAssigned reports whether a shipment currently carries the order.
func (o *Order) IsAssigned() bool {
	return o.shipmentID != nil
}

// IsCompleted reports whether the order has been delivered.
func (o *Order) IsCompleted() bool {
	return o.completeTime != nil
}

// SuitsShift reports whether any of the order's delivery windows overlaps
// the given work shift.
func (o *Order) SuitsShift(shift kernel.TimeInterval) bool {
	for _, interval := range o.deliveryIntervals {
		if interval.Overlaps(shift) {
			return true
		}
	}
	return false
}

// AssignToShipment places the order into a shipment.
//
// Business rules:
//   - A completed order can never be reassigned
//   - An order carried by one shipment cannot join another
func (o *Order) AssignToShipment(shipmentID uuid.UUID) error {
	if o.IsCompleted() {
		return ErrOrderAlreadyCompleted
	}
	if o.IsAssigned() {
		return ErrOrderAlreadyAssigned
	}

	o.shipmentID = &shipmentID
	return nil
}

// Unassign returns the order to the available pool, clearing its shipment
// reference. Completed orders stay where they are.
func (o *Order) Unassign() error {
	if o.IsCompleted() {
		return ErrOrderAlreadyCompleted
	}

	o.shipmentID = nil
	return nil
}

// Complete records the delivery timestamp. The order must be assigned and
// not yet completed; idempotent re-completion is handled one level up, by
// the completion coordinator.
func (o *Order) Complete(completeTime time.Time) error {
	if o.IsCompleted() {
		return ErrOrderAlreadyCompleted
	}
	if !o.IsAssigned() {
		return ErrOrderNotAssigned
	}

	o.completeTime = &completeTime
	return nil
}

func (o *Order) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

func (o *Order) setRegionID(regionID uint64) error {
	if regionID == 0 {
		return errs.NewValueIsRequiredError("region id")
	}
	o.regionID = regionID
	return nil
}

func (o *Order) setDeliveryIntervals(intervals []kernel.TimeInterval) error {
	if len(intervals) == 0 {
		return errs.NewValueIsRequiredError("delivery intervals")
	}

	for _, interval := range intervals {
		if err := interval.Validate(); err != nil {
			return err
		}
	}

	o.deliveryIntervals = make([]kernel.TimeInterval, len(intervals))
	copy(o.deliveryIntervals, intervals)
	return nil
}
