package shipment

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was created
	// bypassing its constructor.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrShipmentAlreadyClosed is returned when closing a shipment twice.
	ErrShipmentAlreadyClosed = errors.New("shipment is already closed")
)

// Shipment is a batch of orders assigned to a courier at a single moment.
// courierTypeCode records the courier's transport type as of the assignment
// and never changes afterwards.
type Shipment struct {
	id              uuid.UUID
	courierID       uint64
	courierTypeCode string
	assignTime      time.Time
	completeTime    *time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates an active shipment for the courier with a generated
// identifier.
func NewShipment(courierID uint64, courierTypeCode string, assignTime time.Time) (*Shipment, error) {
	s := &Shipment{
		id:    uuid.New(),
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		s.setCourierID(courierID),
		s.setCourierTypeCode(courierTypeCode),
		s.setAssignTime(assignTime),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreShipment reconstructs a shipment from persistent storage.
func RestoreShipment(
	id uuid.UUID,
	courierID uint64,
	courierTypeCode string,
	assignTime time.Time,
	completeTime *time.Time,
) (*Shipment, error) {
	s := &Shipment{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		s.setCourierID(courierID),
		s.setCourierTypeCode(courierTypeCode),
		s.setAssignTime(assignTime),
	)
	if err != nil {
		return nil, err
	}

	if completeTime != nil {
		t := *completeTime
		s.completeTime = &t
	}
	return s, nil
}

func (s *Shipment) IsEqual(other *Shipment) bool {
	return s.id == other.id
}

// Validate checks that the shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// ID returns the shipment identifier.
func (s *Shipment) ID() uuid.UUID {
	return s.id
}

// CourierID returns the identifier of the courier carrying the shipment.
func (s *Shipment) CourierID() uint64 {
	return s.courierID
}

// CourierTypeCode returns the courier's transport type frozen at assignment.
func (s *Shipment) CourierTypeCode() string {
	return s.courierTypeCode
}

// AssignTime returns the moment the shipment was assigned.
func (s *Shipment) AssignTime() time.Time {
	return s.assignTime
}

// CompleteTime returns the moment the shipment was closed, or nil while it
// is still active.
func (s *Shipment) CompleteTime() *time.Time {
	if s.completeTime == nil {
		return nil
	}
	t := *s.completeTime
	return &t
}

// IsActive reports whether the shipment is still being delivered.
func (s *Shipment) IsActive() bool {
	return s.completeTime == nil
}

// Close marks the shipment as fully delivered at the given time.
func (s *Shipment) Close(completeTime time.Time) error {
	if s.completeTime != nil {
		return ErrShipmentAlreadyClosed
	}
	t := completeTime
	s.completeTime = &t
	return nil
}

func (s *Shipment) setCourierID(courierID uint64) error {
	if courierID == 0 {
		return errs.NewValueIsRequiredError("courierID")
	}
	s.courierID = courierID
	return nil
}

func (s *Shipment) setCourierTypeCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("courierTypeCode")
	}
	s.courierTypeCode = code
	return nil
}

func (s *Shipment) setAssignTime(assignTime time.Time) error {
	if assignTime.IsZero() {
		return errs.NewValueIsRequiredError("assignTime")
	}
	s.assignTime = assignTime
	return nil
}
