package orderbook

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	New ──> Collecting ──┬──> Booked ──┬──> Paid ──┬──> Shipping ──┬──> Completed
//	          ^          │      │      │           │               │
//	          │          │      └──────┘           └──> Refund <───┘
//	          │          └──> Discarded
//	          └── (Booked can return to Collecting)
//
// Completed, Discarded and Refund are terminal: no transitions leave them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created and its
	// cart has not started collecting yet.
	New

	// Collecting indicates the cart is being filled.
	Collecting

	// Booked indicates the cart has been confirmed and the order awaits
	// a delivery slot and payment.
	Booked

	// Paid indicates the order has been paid.
	// Reachable only once a delivery slot is assigned.
	Paid

	// Shipping indicates the order is on its way.
	Shipping

	// Completed indicates successful delivery. Terminal.
	Completed

	// Discarded indicates the cart was abandoned before booking. Terminal.
	Discarded

	// Refund indicates the order was refunded after payment. Terminal.
	Refund
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "New",
		Collecting: "Collecting",
		Booked:     "Booked",
		Paid:       "Paid",
		Shipping:   "Shipping",
		Completed:  "Completed",
		Discarded:  "Discarded",
		Refund:     "Refund",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "New",
		Collecting: "Collecting",
		Booked:     "Booked",
		Paid:       "Paid",
		Shipping:   "Shipping",
		Completed:  "Completed",
		Discarded:  "Discarded",
		Refund:     "Refund",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ToStatus parses a status from its string representation.
// Returns a ValueIsInvalidError for strings that do not name a valid status.
func ToStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// nextStatuses returns the statuses reachable from the current one.
// Terminal statuses return nil.
func (s Status) nextStatuses() []Status {
	switch s {
	case New:
		return []Status{Collecting}
	case Collecting:
		return []Status{Booked, Discarded}
	case Booked:
		return []Status{Collecting, Paid}
	case Paid:
		return []Status{Shipping, Refund}
	case Shipping:
		return []Status{Completed, Refund}
	default:
		return nil
	}
}

// CanTransitionTo reports whether the state machine permits moving from the
// current status to next. Preconditions that depend on order state (such as
// Paid requiring a delivery slot) are enforced by the order book, not here.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range s.nextStatuses() {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo performs the transition to next.
//
// Returns:
//   - (next, nil) when the transition is listed in the state machine
//   - (Unknown, InvalidTransitionError) otherwise, reporting both the
//     current and the requested status
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Discarded || s == Refund
}

// MarshalText implements encoding.TextMarshaler so statuses serialize to
// their names in JSON fact payloads.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing the names
// produced by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ToStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
