package queries

import (
	"errors"

	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/pkg/guard"
)

var ErrGetPriceQuoteQueryIsNotConstructed = errors.New(
	"GetPriceQuoteQuery must be created via NewGetPriceQuoteQuery constructor",
)

// GetPriceQuoteQuery prices the current cart against the live menu with the
// given checkout parameters, without placing anything. It backs the totals
// panel of the checkout screen.
type GetPriceQuoteQuery struct {
	orderType order.Type
	promoCode string
	tipNaira  int
	address   *order.Address

	guard guard.ConstructorGuard
}

// NewGetPriceQuoteQuery creates a pricing query. The tip and promo code are
// validated by the calculator, not here.
func NewGetPriceQuoteQuery(
	orderType order.Type,
	promoCode string,
	tipNaira int,
	address *order.Address,
) (GetPriceQuoteQuery, error) {
	if err := orderType.Validate(); err != nil {
		return GetPriceQuoteQuery{}, err
	}

	q := GetPriceQuoteQuery{
		orderType: orderType,
		promoCode: promoCode,
		tipNaira:  tipNaira,
		guard:     guard.NewConstructorGuard(),
	}
	if address != nil {
		a := *address
		q.address = &a
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPriceQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceQuoteQueryIsNotConstructed)
}

// OrderType returns delivery or pickup.
func (q GetPriceQuoteQuery) OrderType() order.Type {
	return q.orderType
}

// PromoCode returns the raw promo code input.
func (q GetPriceQuoteQuery) PromoCode() string {
	return q.promoCode
}

// TipNaira returns the tip amount.
func (q GetPriceQuoteQuery) TipNaira() int {
	return q.tipNaira
}

// Address returns the delivery address, or nil.
func (q GetPriceQuoteQuery) Address() *order.Address {
	if q.address == nil {
		return nil
	}
	a := *q.address
	return &a
}

// GetPriceQuoteQueryResponse is the priced cart snapshot.
type GetPriceQuoteQueryResponse struct {
	Totals             TotalsResponse `json:"totals"`
	PromoCode          string         `json:"promoCode,omitempty"`
	HasUnresolvedLines bool           `json:"hasUnresolvedLines"`
	CanCheckout        bool           `json:"canCheckout"`
}
