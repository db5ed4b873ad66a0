package order_test

import (
	"fmt"
	"testing"

	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate recognized statuses", func(t *testing.T) {
		valid := []order.Status{
			order.Confirmed,
			order.Preparing,
			order.Ready,
			order.OnTheWay,
			order.Delivered,
			order.Canceled,
		}

		for _, status := range valid {
			t.Run(fmt.Sprintf("should validate %s", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unrecognized statuses", func(t *testing.T) {
		invalid := []order.Status{"", "shipped", "CONFIRMED", "on the way"}

		for _, status := range invalid {
			t.Run(fmt.Sprintf("should reject %q", string(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should follow canonical flow", func(t *testing.T) {
		testCases := []struct {
			current  order.Status
			expected order.Status
		}{
			{order.Confirmed, order.Preparing},
			{order.Preparing, order.Ready},
			{order.Ready, order.OnTheWay},
			{order.OnTheWay, order.Delivered},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s advances to %s", tc.current, tc.expected), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.current.Next())
			})
		}
	})

	t.Run("should keep terminal statuses", func(t *testing.T) {
		assert.Equal(t, order.Delivered, order.Delivered.Next())
		assert.Equal(t, order.Canceled, order.Canceled.Next())
	})

	t.Run("should restart unknown status at confirmed", func(t *testing.T) {
		assert.Equal(t, order.Confirmed, order.Status("garbage").Next())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.OnTheWay.IsTerminal())
}

func TestStatus_Label(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Confirmed, "Confirmed"},
		{order.Preparing, "Preparing"},
		{order.Ready, "Ready"},
		{order.OnTheWay, "On the way"},
		{order.Delivered, "Delivered"},
		{order.Canceled, "Canceled"},
		{order.Status("odd"), "odd"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.Label())
		})
	}
}
