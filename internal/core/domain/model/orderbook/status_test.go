package orderbook_test

import (
	"fmt"
	"testing"

	"shop/internal/core/domain/model/orderbook"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []orderbook.Status {
	return []orderbook.Status{
		orderbook.New,
		orderbook.Collecting,
		orderbook.Booked,
		orderbook.Paid,
		orderbook.Shipping,
		orderbook.Completed,
		orderbook.Discarded,
		orderbook.Refund,
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have Unknown as zero value", func(t *testing.T) {
		var status orderbook.Status
		assert.Equal(t, orderbook.Unknown, status)
	})

	t.Run("should have distinct values", func(t *testing.T) {
		seen := make(map[orderbook.Status]bool)
		for _, status := range allStatuses() {
			assert.False(t, seen[status], "status %s duplicated", status.String())
			seen[status] = true
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all named statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		invalidStatuses := []orderbook.Status{
			orderbook.Unknown,
			orderbook.Status(-1),
			orderbook.Status(9),
			orderbook.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "is not a valid status")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return the status name", func(t *testing.T) {
		testCases := []struct {
			status   orderbook.Status
			expected string
		}{
			{orderbook.New, "New"},
			{orderbook.Collecting, "Collecting"},
			{orderbook.Booked, "Booked"},
			{orderbook.Paid, "Paid"},
			{orderbook.Shipping, "Shipping"},
			{orderbook.Completed, "Completed"},
			{orderbook.Discarded, "Discarded"},
			{orderbook.Refund, "Refund"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", orderbook.Unknown.String())
		assert.Equal(t, "Unknown", orderbook.Status(-1).String())
		assert.Equal(t, "Unknown", orderbook.Status(100).String())
	})
}

func TestToStatus(t *testing.T) {
	t.Run("should round-trip every named status", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := orderbook.ToStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject names that are not valid statuses", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "paid", "SHIPPING", "garbage"} {
			parsed, err := orderbook.ToStatus(name)

			require.Error(t, err, "name %q should not parse", name)
			assert.Equal(t, orderbook.Unknown, parsed)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	// The full transition table. Any pair not listed is forbidden.
	allowed := map[orderbook.Status][]orderbook.Status{
		orderbook.New:        {orderbook.Collecting},
		orderbook.Collecting: {orderbook.Booked, orderbook.Discarded},
		orderbook.Booked:     {orderbook.Collecting, orderbook.Paid},
		orderbook.Paid:       {orderbook.Shipping, orderbook.Refund},
		orderbook.Shipping:   {orderbook.Completed, orderbook.Refund},
		orderbook.Completed:  nil,
		orderbook.Discarded:  nil,
		orderbook.Refund:     nil,
	}

	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			expected := false
			for _, next := range allowed[from] {
				if next == to {
					expected = true
				}
			}

			t.Run(fmt.Sprintf("%s to %s", from.String(), to.String()), func(t *testing.T) {
				assert.Equal(t, expected, from.CanTransitionTo(to))

				next, err := from.TransitionTo(to)
				if expected {
					require.NoError(t, err)
					assert.Equal(t, to, next)
				} else {
					require.Error(t, err)
					assert.Equal(t, orderbook.Unknown, next)
					assert.ErrorIs(t, err, errs.ErrInvalidTransition)
					assert.Contains(t, err.Error(),
						fmt.Sprintf("from %s to %s", from.String(), to.String()))
				}
			})
		}
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should reject transitions to invalid target values", func(t *testing.T) {
		_, err := orderbook.Collecting.TransitionTo(orderbook.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not modify the receiver", func(t *testing.T) {
		status := orderbook.Collecting

		next, err := status.TransitionTo(orderbook.Booked)

		require.NoError(t, err)
		assert.Equal(t, orderbook.Collecting, status)
		assert.Equal(t, orderbook.Booked, next)
	})

	t.Run("should walk the happy path end to end", func(t *testing.T) {
		status := orderbook.New

		for _, next := range []orderbook.Status{
			orderbook.Collecting,
			orderbook.Booked,
			orderbook.Paid,
			orderbook.Shipping,
			orderbook.Completed,
		} {
			var err error
			status, err = status.TransitionTo(next)
			require.NoError(t, err)
			assert.Equal(t, next, status)
		}

		assert.True(t, status.IsTerminal())
	})

	t.Run("should allow booking to return to collecting", func(t *testing.T) {
		status, err := orderbook.Booked.TransitionTo(orderbook.Collecting)

		require.NoError(t, err)
		assert.Equal(t, orderbook.Collecting, status)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should mark exit statuses as terminal", func(t *testing.T) {
		assert.True(t, orderbook.Completed.IsTerminal())
		assert.True(t, orderbook.Discarded.IsTerminal())
		assert.True(t, orderbook.Refund.IsTerminal())
	})

	t.Run("should mark working statuses as non-terminal", func(t *testing.T) {
		for _, status := range []orderbook.Status{
			orderbook.New,
			orderbook.Collecting,
			orderbook.Booked,
			orderbook.Paid,
			orderbook.Shipping,
		} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status.String())
		}
	})
}

func TestStatus_TextMarshaling(t *testing.T) {
	t.Run("should round-trip through text", func(t *testing.T) {
		for _, status := range allStatuses() {
			text, err := status.MarshalText()
			require.NoError(t, err)

			var parsed orderbook.Status
			require.NoError(t, parsed.UnmarshalText(text))
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject invalid text", func(t *testing.T) {
		var parsed orderbook.Status
		err := parsed.UnmarshalText([]byte("garbage"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
