package kernel

import (
	"fmt"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrTimeSlotIsNotConstructed is returned when attempting to use an improperly initialized TimeSlot.
// Time slots must be created via the NewTimeSlot constructor to ensure validity.
var ErrTimeSlotIsNotConstructed = errs.NewValueIsRequiredError(
	"time slot must be created via NewTimeSlot constructor")

// TimeSlot represents a delivery window bounded by a start and an end date.
// TimeSlot is an immutable value object: once assigned to an order it can only
// be replaced as a whole, never partially mutated. The zero value is invalid
// and will fail validation - use the constructor to create instances.
//
// Example:
//
//	slot, err := kernel.NewTimeSlot(start, start.Add(48*time.Hour))
//	if err != nil {
//	    // Handle validation error
//	}
type TimeSlot struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewTimeSlot creates a new TimeSlot with the specified bounds.
// Both dates must be set and the end must not precede the start.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	slot := TimeSlot{
		guard: guard.NewConstructorGuard(),
	}

	if start.IsZero() {
		return TimeSlot{}, errs.NewValueIsRequiredError("start date")
	}
	if end.IsZero() {
		return TimeSlot{}, errs.NewValueIsRequiredError("end date")
	}
	if end.Before(start) {
		return TimeSlot{}, errs.NewValueIsInvalidErrorWithCause(
			"time slot",
			fmt.Errorf("end date %s is before start date %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}

	slot.start = start
	slot.end = end
	return slot, nil
}

// Validate checks if the TimeSlot was properly constructed using the constructor.
// The zero value of TimeSlot is invalid and will fail this validation.
func (t TimeSlot) Validate() error {
	return t.guard.Validate(ErrTimeSlotIsNotConstructed)
}

// Start returns the start date of the delivery window.
func (t TimeSlot) Start() time.Time {
	return t.start
}

// End returns the end date of the delivery window.
func (t TimeSlot) End() time.Time {
	return t.end
}

// IsEqual compares two time slots by their bounds.
func (t TimeSlot) IsEqual(other TimeSlot) bool {
	return t.start.Equal(other.start) && t.end.Equal(other.end)
}

// String returns a human-readable representation of the slot.
func (t TimeSlot) String() string {
	return fmt.Sprintf("TimeSlot(%s..%s)", t.start.Format(time.RFC3339), t.end.Format(time.RFC3339))
}
