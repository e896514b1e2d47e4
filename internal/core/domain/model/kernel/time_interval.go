package kernel

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"

	"dispatch/internal/pkg/guard"
)

// ErrTimeIntervalIsNotConstructed is returned when using an improperly initialized TimeInterval.
var ErrTimeIntervalIsNotConstructed = fmt.Errorf("TimeInterval must be created via NewTimeInterval constructor")

// TimeInterval is a same-day half-open time window [Start, End).
// It represents both courier work shifts and order delivery windows.
// Start must be strictly before End.
type TimeInterval struct {
	start TimeOfDay
	end   TimeOfDay
	guard guard.ConstructorGuard
}

// NewTimeInterval creates a TimeInterval from two times of day.
//
// Returns:
//   - TimeInterval: the validated interval
//   - error: validation error when either bound is invalid or start >= end
func NewTimeInterval(start, end TimeOfDay) (TimeInterval, error) {
	if err := start.Validate(); err != nil {
		return TimeInterval{}, err
	}
	if err := end.Validate(); err != nil {
		return TimeInterval{}, err
	}
	if !start.Before(end) {
		return TimeInterval{}, errs.NewValueIsInvalidErrorWithCause(
			"time interval",
			fmt.Errorf("start %s is not before end %s", start, end),
		)
	}

	return TimeInterval{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

// ParseTimeInterval parses the "HH:MM-HH:MM" wire format used by the HTTP API.
func ParseTimeInterval(s string) (TimeInterval, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeInterval{}, errs.NewValueIsInvalidErrorWithCause(
			"time interval",
			fmt.Errorf("%q is not in HH:MM-HH:MM format", s),
		)
	}

	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return TimeInterval{}, err
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return TimeInterval{}, err
	}

	return NewTimeInterval(start, end)
}

// Start returns the inclusive lower bound.
func (i TimeInterval) Start() TimeOfDay {
	return i.start
}

// End returns the exclusive upper bound.
func (i TimeInterval) End() TimeOfDay {
	return i.end
}

// Overlaps reports whether two half-open intervals share at least one minute:
// i.start < other.end && i.end > other.start.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

// IsEqual compares two intervals by their bounds.
func (i TimeInterval) IsEqual(other TimeInterval) bool {
	return i.start == other.start && i.end == other.end
}

// String formats the interval in the "HH:MM-HH:MM" wire format.
func (i TimeInterval) String() string {
	return fmt.Sprintf("%s-%s", i.start, i.end)
}

// Validate checks if the TimeInterval was properly constructed via NewTimeInterval.
func (i TimeInterval) Validate() error {
	return i.guard.Validate(ErrTimeIntervalIsNotConstructed)
}
