package courier

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrIDIsRequired is returned when attempting to create a courier without an id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("courier id")
	// ErrRegionsAreRequired is returned when a courier would end up serving no regions.
	ErrRegionsAreRequired = errs.NewValueIsRequiredError("regions")
	// ErrShiftsAreRequired is returned when a courier would end up with no work shifts.
	ErrShiftsAreRequired = errs.NewValueIsRequiredError("work shifts")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages the courier's transport type, the set
// of regions it serves, and its daily work shifts.
//
// Key responsibilities:
//   - Managing courier identity (externally assigned numeric id)
//   - Holding the transport type, which determines bag capacity
//   - Holding served regions and work shifts used by order matching
//
// Business rules:
//   - A courier must have a valid type, at least one region, and at least one shift
//   - Region and shift sets mutate with replace-all semantics: the whole set
//     is swapped, never merged
//   - Uniqueness of (courier, region) pairs is enforced by the store
type Courier struct {
	// id is the externally assigned numeric identifier
	id uint64
	// courierType determines the courier's bag capacity
	courierType Type
	// regionIDs are the regions this courier serves
	regionIDs []uint64
	// shifts are the courier's daily work intervals
	shifts []kernel.TimeInterval
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// This is the only way to create a valid Courier instance; ids are assigned
// externally, so the caller supplies one.
//
// Returns:
//   - *Courier: a fully initialized courier
//   - error: validation error if any parameter is invalid
func NewCourier(id uint64, courierType Type, regionIDs []uint64, shifts []kernel.TimeInterval) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.SetType(courierType),
		courier.SetRegions(regionIDs),
		courier.SetShifts(shifts),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// The restored courier behaves identically to one created through NewCourier.
func RestoreCourier(id uint64, courierType Type, regionIDs []uint64, shifts []kernel.TimeInterval) (*Courier, error) {
	return NewCourier(id, courierType, regionIDs, shifts)
}

// IsEqual compares two couriers by id.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id == other.id
}

// Validate checks if the Courier was properly constructed via NewCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's externally assigned identifier.
func (c *Courier) ID() uint64 {
	return c.id
}

// Type returns the courier's current transport type.
func (c *Courier) Type() Type {
	return c.courierType
}

// Capacity returns the bag capacity granted by the courier's current type.
func (c *Courier) Capacity() kernel.Weight {
	return c.courierType.Capacity()
}

// RegionIDs returns the regions this courier serves.
// The returned slice is a copy to prevent external modification.
func (c *Courier) RegionIDs() []uint64 {
	out := make([]uint64, len(c.regionIDs))
	copy(out, c.regionIDs)
	return out
}

// Shifts returns the courier's work shifts.
// The returned slice is a copy to prevent external modification.
func (c *Courier) Shifts() []kernel.TimeInterval {
	out := make([]kernel.TimeInterval, len(c.shifts))
	copy(out, c.shifts)
	return out
}

// ServesRegion reports whether the courier serves the given region.
func (c *Courier) ServesRegion(regionID uint64) bool {
	for _, id := range c.regionIDs {
		if id == regionID {
			return true
		}
	}
	return false
}

// SetType replaces the courier's transport type, and with it the capacity.
func (c *Courier) SetType(courierType Type) error {
	if err := courierType.Validate(); err != nil {
		return err
	}

	c.courierType = courierType
	return nil
}

// SetRegions replaces the full set of served regions.
// Replace-all semantics: the previous set is discarded, never merged.
func (c *Courier) SetRegions(regionIDs []uint64) error {
	if len(regionIDs) == 0 {
		return ErrRegionsAreRequired
	}

	c.regionIDs = make([]uint64, len(regionIDs))
	copy(c.regionIDs, regionIDs)
	return nil
}

// SetShifts replaces the full set of work shifts.
// Replace-all semantics: the previous set is discarded, never merged.
func (c *Courier) SetShifts(shifts []kernel.TimeInterval) error {
	if len(shifts) == 0 {
		return ErrShiftsAreRequired
	}

	for _, shift := range shifts {
		if err := shift.Validate(); err != nil {
			return err
		}
	}

	c.shifts = make([]kernel.TimeInterval, len(shifts))
	copy(c.shifts, shifts)
	return nil
}

func (c *Courier) setID(id uint64) error {
	if id == 0 {
		return ErrIDIsRequired
	}

	c.id = id
	return nil
}
