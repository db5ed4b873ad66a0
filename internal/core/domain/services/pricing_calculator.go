package services

import (
	"fmt"
	"strings"

	"yumyum/internal/core/domain/model/cart"
	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/pkg/errs"
)

// DefaultDeliveryFeeNaira is the flat delivery fee applied to delivery
// orders when no override is configured.
const DefaultDeliveryFeeNaira = 700

// Promo codes recognized by the calculator. Codes are matched after
// NormalizePromoCode, so customer input is case- and whitespace-insensitive.
const (
	// PromoTenPercent takes 10% off the subtotal, rounded down.
	PromoTenPercent = "YUM10"

	// PromoFreeDelivery waives the delivery fee. It has no effect on
	// pickup orders, whose fee is already zero.
	PromoFreeDelivery = "FREEDEL"
)

// TipPresetsNaira are the tip amounts offered at checkout. Any non-negative
// amount is accepted; the presets only drive the UI.
var TipPresetsNaira = []int{0, 200, 500, 1000}

// ItemPricer resolves the current unit price of a menu item. The menu catalog
// satisfies this contract.
type ItemPricer interface {
	// PriceOf returns the unit price in naira of the given item and whether
	// the item is known.
	PriceOf(itemID string) (int, bool)
}

// NormalizePromoCode trims surrounding whitespace and uppercases a promo
// code, making "  yum10 " equal to "YUM10".
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// QuoteInput carries everything the calculator needs to price a cart.
type QuoteInput struct {
	// Lines is the cart content to price. It is read as-is; callers pass
	// an already-sanitized cart snapshot.
	Lines []cart.Line

	// Pricer resolves unit prices, typically the menu catalog.
	Pricer ItemPricer

	// OrderType selects between delivery (fee applies, address required)
	// and pickup.
	OrderType order.Type

	// PromoCode is the raw customer input, normalized before matching.
	// Empty means no promo.
	PromoCode string

	// TipNaira is the tip amount, zero or positive.
	TipNaira int

	// Address is the delivery destination. Only consulted for the
	// CanCheckout verdict of delivery orders.
	Address *order.Address
}

// Quote is the priced snapshot of a cart plus the checkout verdict.
type Quote struct {
	// Totals is the full pricing breakdown. Totals.TotalNaira honors
	// max(0, subtotal + fee + tip - discount).
	Totals order.Totals

	// PromoCode is the normalized applied code, empty if none.
	PromoCode string

	// HasUnresolvedLines is true when at least one cart line references an
	// item the pricer doesn't know. Unresolved lines contribute nothing to
	// the subtotal and block checkout.
	HasUnresolvedLines bool

	// CanCheckout is true when the cart is non-empty, every line resolved
	// to a price, and (for delivery) the required address fields are
	// present.
	CanCheckout bool
}

// PricingCalculator is a domain service computing the priced quote for a
// cart.
//
// Key responsibilities:
//   - Summing line prices against the current menu, flagging lines whose
//     item has disappeared
//   - Applying the flat delivery fee and the recognized promo codes
//   - Producing the checkout verdict
//
// Business rules:
//   - Unknown promo codes are an error, not a silent no-op
//   - The discount never pushes the total below zero
//   - Removed menu items don't fail the quote; they surface as unresolved
//     lines that block checkout until the customer removes them
type PricingCalculator struct {
	deliveryFeeNaira int
}

// NewPricingCalculator creates a calculator with the given flat delivery fee.
// A non-positive fee falls back to DefaultDeliveryFeeNaira.
func NewPricingCalculator(deliveryFeeNaira int) PricingCalculator {
	if deliveryFeeNaira <= 0 {
		deliveryFeeNaira = DefaultDeliveryFeeNaira
	}
	return PricingCalculator{deliveryFeeNaira: deliveryFeeNaira}
}

// Quote prices the given cart snapshot.
//
// Returns a validation error for a negative tip or an unrecognized promo
// code. An empty cart is not an error: it quotes to zero with
// CanCheckout=false.
func (p PricingCalculator) Quote(input QuoteInput) (Quote, error) {
	if input.TipNaira < 0 {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause("tipNaira",
			fmt.Errorf("%d is negative", input.TipNaira))
	}
	if err := input.OrderType.Validate(); err != nil {
		return Quote{}, err
	}

	promo := NormalizePromoCode(input.PromoCode)
	switch promo {
	case "", PromoTenPercent, PromoFreeDelivery:
	default:
		return Quote{}, errs.NewValueIsInvalidErrorWithCause("promoCode",
			fmt.Errorf("%q is not a valid promo code", promo))
	}

	subtotal := 0
	unresolved := false
	for _, line := range input.Lines {
		price, ok := input.Pricer.PriceOf(line.ItemID())
		if !ok {
			unresolved = true
			continue
		}
		subtotal += price * line.Quantity()
	}

	fee := 0
	if input.OrderType == order.TypeDelivery {
		fee = p.deliveryFeeNaira
	}

	discount := 0
	switch promo {
	case PromoTenPercent:
		discount = subtotal / 10
	case PromoFreeDelivery:
		fee = 0
	}

	total := subtotal + fee + input.TipNaira - discount
	if total < 0 {
		total = 0
	}

	return Quote{
		Totals: order.Totals{
			SubtotalNaira:    subtotal,
			DeliveryFeeNaira: fee,
			DiscountNaira:    discount,
			TipNaira:         input.TipNaira,
			TotalNaira:       total,
		},
		PromoCode:          promo,
		HasUnresolvedLines: unresolved,
		CanCheckout:        p.canCheckout(input, unresolved),
	}, nil
}

// canCheckout applies the checkout gate: non-empty cart, every line priced,
// and for delivery the required address fields present.
func (p PricingCalculator) canCheckout(input QuoteInput, unresolved bool) bool {
	if len(input.Lines) == 0 || unresolved {
		return false
	}
	if input.OrderType == order.TypePickup {
		return true
	}
	return input.Address != nil && input.Address.Validate() == nil
}
