package order_test

import (
	"strings"
	"testing"
	"time"

	"yumyum/internal/core/domain/model/cart"
	"yumyum/internal/core/domain/model/kernel"
	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTotals() order.Totals {
	return order.Totals{
		SubtotalNaira:    10000,
		DeliveryFeeNaira: 700,
		DiscountNaira:    1000,
		TipNaira:         500,
		TotalNaira:       10200,
	}
}

func validAddress() *order.Address {
	return &order.Address{
		FullName: "Ada Obi",
		Phone:    "08010000000",
		Line1:    "12 Allen Avenue",
	}
}

func newDeliveryOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewNumber(),
		order.TypeDelivery,
		[]cart.Line{cart.NewLine("chicken-1", 2)},
		validAddress(),
		validTotals(),
		"YUM10",
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewNumber(t *testing.T) {
	t.Run("should produce display label", func(t *testing.T) {
		n := order.NewNumber().String()

		assert.True(t, strings.HasPrefix(n, "YY-"), "got %s", n)
		assert.Len(t, n, 8)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create confirmed order with one event", func(t *testing.T) {
		placedAt := time.Now()
		o, err := order.NewOrder(
			kernel.NewUUID(),
			order.NewNumber(),
			order.TypeDelivery,
			[]cart.Line{cart.NewLine("chicken-1", 2)},
			validAddress(),
			validTotals(),
			"",
			placedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		require.Len(t, o.Events(), 1)
		assert.Equal(t, order.Confirmed, o.Events()[0].Status)
		assert.Equal(t, placedAt, o.Events()[0].At)
		assert.Equal(t, placedAt, o.PlacedAt())
	})

	t.Run("should sanitize the line snapshot", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(),
			order.NewNumber(),
			order.TypePickup,
			[]cart.Line{
				cart.NewLine("a", 12),
				cart.NewLine("a", 12),
				cart.NewLine("", 3),
			},
			nil,
			order.Totals{SubtotalNaira: 100, TotalNaira: 100},
			"",
			time.Now(),
		)

		require.NoError(t, err)
		lines := o.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 20, lines[0].Quantity())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			order.NewNumber(),
			order.TypePickup,
			nil,
			nil,
			order.Totals{},
			"",
			time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require address for delivery", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			order.NewNumber(),
			order.TypeDelivery,
			[]cart.Line{cart.NewLine("a", 1)},
			nil,
			validTotals(),
			"",
			time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject blank required address field", func(t *testing.T) {
		addr := validAddress()
		addr.Phone = ""

		_, err := order.NewOrder(
			kernel.NewUUID(),
			order.NewNumber(),
			order.TypeDelivery,
			[]cart.Line{cart.NewLine("a", 1)},
			addr,
			validTotals(),
			"",
			time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should reject address on pickup", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			order.NewNumber(),
			order.TypePickup,
			[]cart.Line{cart.NewLine("a", 1)},
			validAddress(),
			validTotals(),
			"",
			time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject inconsistent totals", func(t *testing.T) {
		totals := validTotals()
		totals.TotalNaira = 1

		_, err := order.NewOrder(
			kernel.NewUUID(),
			order.NewNumber(),
			order.TypeDelivery,
			[]cart.Line{cart.NewLine("a", 1)},
			validAddress(),
			totals,
			"",
			time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative totals field", func(t *testing.T) {
		totals := validTotals()
		totals.TipNaira = -1

		_, err := order.NewOrder(
			kernel.NewUUID(),
			order.NewNumber(),
			order.TypeDelivery,
			[]cart.Line{cart.NewLine("a", 1)},
			validAddress(),
			totals,
			"",
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should walk canonical flow then stop", func(t *testing.T) {
		o := newDeliveryOrder(t)
		now := time.Now()

		assert.Equal(t, order.Preparing, o.Advance(now))
		assert.Equal(t, order.Ready, o.Advance(now))
		assert.Equal(t, order.OnTheWay, o.Advance(now))
		assert.Equal(t, order.Delivered, o.Advance(now))

		// Terminal: further advances are no-ops.
		assert.Equal(t, order.Delivered, o.Advance(now))
		assert.Equal(t, order.Delivered, o.Status())
		assert.Len(t, o.Events(), 5)
	})

	t.Run("should be no-op on canceled order", func(t *testing.T) {
		o := newDeliveryOrder(t)
		o.Cancel(time.Now())

		assert.Equal(t, order.Canceled, o.Advance(time.Now()))
		assert.Equal(t, order.Canceled, o.Status())
	})
}

func TestOrder_ForceStatus(t *testing.T) {
	t.Run("should set any status without transition check", func(t *testing.T) {
		o := newDeliveryOrder(t)

		require.NoError(t, o.ForceStatus(order.Delivered, time.Now()))
		require.NoError(t, o.ForceStatus(order.Preparing, time.Now()))

		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should record each status event once", func(t *testing.T) {
		o := newDeliveryOrder(t)
		first := time.Now()
		later := first.Add(time.Minute)

		require.NoError(t, o.ForceStatus(order.Ready, first))
		require.NoError(t, o.ForceStatus(order.Ready, later))

		events := o.Events()
		require.Len(t, events, 2)
		assert.Equal(t, order.Ready, events[1].Status)
		assert.Equal(t, first, events[1].At, "history keeps the first occurrence")
	})

	t.Run("should reject unrecognized status", func(t *testing.T) {
		o := newDeliveryOrder(t)

		err := o.ForceStatus(order.Status("shipped"), time.Now())

		require.Error(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel from any status including delivered", func(t *testing.T) {
		o := newDeliveryOrder(t)
		for o.Status() != order.Delivered {
			o.Advance(time.Now())
		}

		o.Cancel(time.Now())

		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("should record canceled event once", func(t *testing.T) {
		o := newDeliveryOrder(t)

		o.Cancel(time.Now())
		o.Cancel(time.Now().Add(time.Minute))

		count := 0
		for _, e := range o.Events() {
			if e.Status == order.Canceled {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should coerce unknown status to confirmed", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			"YY-00001",
			order.TypePickup,
			order.Status("garbage"),
			time.Now(),
			[]cart.Line{cart.NewLine("a", 1)},
			nil,
			order.Totals{},
			"",
			nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should keep first event per status", func(t *testing.T) {
		first := time.Now()
		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			"YY-00002",
			order.TypePickup,
			order.Ready,
			first,
			[]cart.Line{cart.NewLine("a", 1)},
			nil,
			order.Totals{},
			"",
			[]order.Event{
				{Status: order.Confirmed, At: first},
				{Status: order.Confirmed, At: first.Add(time.Hour)},
				{Status: order.Status("bogus"), At: first},
				{Status: order.Ready, At: first},
			},
		)

		require.NoError(t, err)
		events := o.Events()
		require.Len(t, events, 2)
		assert.Equal(t, first, events[0].At)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero-value order", func(t *testing.T) {
		var o order.Order

		require.Error(t, o.Validate())
	})

	t.Run("should accept constructed order", func(t *testing.T) {
		require.NoError(t, newDeliveryOrder(t).Validate())
	})
}
