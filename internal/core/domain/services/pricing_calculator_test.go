package services_test

import (
	"testing"

	"yumyum/internal/core/domain/model/cart"
	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/core/domain/services"
	"yumyum/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pricerStub resolves prices from a fixed map.
type pricerStub map[string]int

func (p pricerStub) PriceOf(itemID string) (int, bool) {
	price, ok := p[itemID]
	return price, ok
}

var prices = pricerStub{
	"jollof":  3500,
	"suya":    4200,
	"zobo":    900,
	"chapman": 1500,
}

func lines(pairs ...any) []cart.Line {
	out := make([]cart.Line, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, cart.NewLine(pairs[i].(string), pairs[i+1].(int)))
	}
	return out
}

func TestPricingCalculator_Quote(t *testing.T) {
	calc := services.NewPricingCalculator(services.DefaultDeliveryFeeNaira)

	t.Run("should sum resolved line prices", func(t *testing.T) {
		quote, err := calc.Quote(services.QuoteInput{
			Lines:     lines("jollof", 2, "zobo", 3),
			Pricer:    prices,
			OrderType: order.TypePickup,
		})

		require.NoError(t, err)
		assert.Equal(t, 9700, quote.Totals.SubtotalNaira)
		assert.Equal(t, 0, quote.Totals.DeliveryFeeNaira)
		assert.Equal(t, 9700, quote.Totals.TotalNaira)
		assert.True(t, quote.CanCheckout)
	})

	t.Run("should charge flat fee on delivery", func(t *testing.T) {
		quote, err := calc.Quote(services.QuoteInput{
			Lines:     lines("jollof", 1),
			Pricer:    prices,
			OrderType: order.TypeDelivery,
		})

		require.NoError(t, err)
		assert.Equal(t, 700, quote.Totals.DeliveryFeeNaira)
		assert.Equal(t, 4200, quote.Totals.TotalNaira)
	})

	t.Run("should apply ten percent promo rounded down", func(t *testing.T) {
		quote, err := calc.Quote(services.QuoteInput{
			Lines:     lines("jollof", 1, "zobo", 1), // subtotal 4400
			Pricer:    prices,
			OrderType: order.TypePickup,
			PromoCode: " yum10 ",
		})

		require.NoError(t, err)
		assert.Equal(t, 440, quote.Totals.DiscountNaira)
		assert.Equal(t, 3960, quote.Totals.TotalNaira)
		assert.Equal(t, services.PromoTenPercent, quote.PromoCode)
	})

	t.Run("should waive delivery fee with freedel", func(t *testing.T) {
		quote, err := calc.Quote(services.QuoteInput{
			Lines:     lines("suya", 1),
			Pricer:    prices,
			OrderType: order.TypeDelivery,
			PromoCode: "freedel",
		})

		require.NoError(t, err)
		assert.Equal(t, 0, quote.Totals.DeliveryFeeNaira)
		assert.Equal(t, 4200, quote.Totals.TotalNaira)
	})

	t.Run("should reject unknown promo code", func(t *testing.T) {
		_, err := calc.Quote(services.QuoteInput{
			Lines:     lines("suya", 1),
			Pricer:    prices,
			OrderType: order.TypePickup,
			PromoCode: "BOGUS",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative tip", func(t *testing.T) {
		_, err := calc.Quote(services.QuoteInput{
			Lines:     lines("suya", 1),
			Pricer:    prices,
			OrderType: order.TypePickup,
			TipNaira:  -1,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should add tip to total", func(t *testing.T) {
		quote, err := calc.Quote(services.QuoteInput{
			Lines:     lines("zobo", 1),
			Pricer:    prices,
			OrderType: order.TypePickup,
			TipNaira:  500,
		})

		require.NoError(t, err)
		assert.Equal(t, 500, quote.Totals.TipNaira)
		assert.Equal(t, 1400, quote.Totals.TotalNaira)
	})

	t.Run("should flag unresolved lines and block checkout", func(t *testing.T) {
		quote, err := calc.Quote(services.QuoteInput{
			Lines:     lines("jollof", 1, "discontinued", 2),
			Pricer:    prices,
			OrderType: order.TypePickup,
		})

		require.NoError(t, err)
		assert.True(t, quote.HasUnresolvedLines)
		assert.Equal(t, 3500, quote.Totals.SubtotalNaira)
		assert.False(t, quote.CanCheckout)
	})

	t.Run("should quote empty cart to zero without checkout", func(t *testing.T) {
		quote, err := calc.Quote(services.QuoteInput{
			Lines:     nil,
			Pricer:    prices,
			OrderType: order.TypeDelivery,
		})

		require.NoError(t, err)
		assert.Equal(t, 700, quote.Totals.DeliveryFeeNaira)
		assert.Equal(t, 700, quote.Totals.TotalNaira)
		assert.False(t, quote.CanCheckout)
	})

	t.Run("should never quote below zero", func(t *testing.T) {
		cheap := pricerStub{"mint": 1}

		quote, err := calc.Quote(services.QuoteInput{
			Lines:     lines("mint", 1),
			Pricer:    cheap,
			OrderType: order.TypePickup,
			PromoCode: services.PromoTenPercent,
		})

		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.Totals.TotalNaira, 0)
	})
}

func TestPricingCalculator_Quote_Checkout(t *testing.T) {
	calc := services.NewPricingCalculator(0)

	t.Run("should require address fields for delivery", func(t *testing.T) {
		quote, err := calc.Quote(services.QuoteInput{
			Lines:     lines("jollof", 1),
			Pricer:    prices,
			OrderType: order.TypeDelivery,
			Address:   &order.Address{FullName: "Ada Obi", Phone: "0801", Line1: ""},
		})

		require.NoError(t, err)
		assert.False(t, quote.CanCheckout)
	})

	t.Run("should allow delivery checkout with full address", func(t *testing.T) {
		quote, err := calc.Quote(services.QuoteInput{
			Lines:     lines("jollof", 1),
			Pricer:    prices,
			OrderType: order.TypeDelivery,
			Address:   &order.Address{FullName: "Ada Obi", Phone: "0801", Line1: "12 Allen Avenue"},
		})

		require.NoError(t, err)
		assert.True(t, quote.CanCheckout)
	})
}

func TestNewPricingCalculator(t *testing.T) {
	t.Run("should fall back to default fee", func(t *testing.T) {
		calc := services.NewPricingCalculator(-5)

		quote, err := calc.Quote(services.QuoteInput{
			Lines:     lines("zobo", 1),
			Pricer:    prices,
			OrderType: order.TypeDelivery,
		})

		require.NoError(t, err)
		assert.Equal(t, services.DefaultDeliveryFeeNaira, quote.Totals.DeliveryFeeNaira)
	})
}
