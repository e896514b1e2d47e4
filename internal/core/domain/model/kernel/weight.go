package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWeightIsNotConstructed is returned when using an improperly initialized Weight.
var ErrWeightIsNotConstructed = errors.New("Weight must be created via NewWeight constructor")

// Weight is an exact decimal weight in kilograms. Order weights and courier
// capacities are decimals on the wire and in storage, so float arithmetic is
// never used for capacity checks.
type Weight struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from a decimal value. The value must be
// strictly positive.
func NewWeight(value decimal.Decimal) (Weight, error) {
	if !value.IsPositive() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s is not greater than 0", value),
		)
	}

	return Weight{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ParseWeight parses a decimal string such as "0.23".
func ParseWeight(s string) (Weight, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(value)
}

// Value returns the underlying decimal value in kilograms.
func (w Weight) Value() decimal.Decimal {
	return w.value
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{value: w.value.Add(other.value), guard: guard.NewConstructorGuard()}
}

// LessThan reports whether w is strictly lighter than other.
func (w Weight) LessThan(other Weight) bool {
	return w.value.LessThan(other.value)
}

// IsEqual compares two weights by value.
func (w Weight) IsEqual(other Weight) bool {
	return w.value.Equal(other.value)
}

// String formats the weight as a plain decimal string.
func (w Weight) String() string {
	return w.value.String()
}

// Validate checks if the Weight was properly constructed via NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
