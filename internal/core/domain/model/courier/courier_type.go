package courier

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Known courier type codes. Capacities for these codes are reference data
// seeded into storage (foot 10 kg, bike 15 kg, car 50 kg); any other code is
// treated as unknown and earns nothing.
const (
	TypeFoot = "foot"
	TypeBike = "bike"
	TypeCar  = "car"
)

// ErrTypeIsNotConstructed is returned when using an improperly initialized Type.
var ErrTypeIsNotConstructed = errors.New("Type must be created via NewType constructor")

// earningsCoefficients maps courier type codes to the per-shipment earnings
// multiplier. Unknown codes deliberately map to 0 instead of erroring so that
// historical shipments with retired type codes still aggregate.
var earningsCoefficients = map[string]int64{
	TypeFoot: 2,
	TypeBike: 5,
	TypeCar:  9,
}

// Type is the courier transport type: a code plus the bag capacity that
// comes with it. It is immutable reference data; couriers reference a Type
// and shipments freeze the code they were created with.
type Type struct {
	code     string
	capacity kernel.Weight
	guard    guard.ConstructorGuard
}

// NewType creates a courier Type from a code and a carrying capacity.
//
// Returns:
//   - Type: the validated type
//   - error: validation error when the code is empty or the capacity invalid
func NewType(code string, capacity kernel.Weight) (Type, error) {
	if code == "" {
		return Type{}, errs.NewValueIsRequiredError("courier type code")
	}
	if err := capacity.Validate(); err != nil {
		return Type{}, err
	}

	return Type{code: code, capacity: capacity, guard: guard.NewConstructorGuard()}, nil
}

// Code returns the type code ("foot", "bike", "car", ...).
func (t Type) Code() string {
	return t.code
}

// Capacity returns the bag capacity in kilograms for this type.
func (t Type) Capacity() kernel.Weight {
	return t.capacity
}

// IsEqual compares two types by code.
func (t Type) IsEqual(other Type) bool {
	return t.code == other.code
}

// Validate checks if the Type was properly constructed via NewType.
func (t Type) Validate() error {
	return t.guard.Validate(ErrTypeIsNotConstructed)
}

// EarningsCoefficientForCode returns the earnings multiplier for a courier
// type code. Unknown codes return 0.
func EarningsCoefficientForCode(code string) int64 {
	return earningsCoefficients[code]
}
