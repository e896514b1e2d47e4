package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute precision, stored as minutes
// since midnight. The zero value is midnight, which is a valid time.
type TimeOfDay int

// NewTimeOfDay creates a TimeOfDay from an hour and minute.
//
// Returns:
//   - TimeOfDay: the validated time of day
//   - error: ValueIsOutOfRangeError when hour or minute fall outside a day
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return 0, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses the "HH:MM" wire format used by the HTTP API.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &hour, &minute); err != nil || len(s) != 5 || s[2] != ':' {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"time of day",
			fmt.Errorf("%q is not in HH:MM format", s),
		)
	}
	return NewTimeOfDay(hour, minute)
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// String formats the time in the "HH:MM" wire format.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Validate checks that the time falls within a single day.
func (t TimeOfDay) Validate() error {
	if t < 0 || int(t) >= minutesPerDay {
		return errs.NewValueIsOutOfRangeError("time of day", int(t), 0, minutesPerDay-1)
	}
	return nil
}
