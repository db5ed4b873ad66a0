package queries

import (
	"errors"
	"time"

	"yumyum/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves every placed order, newest first.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a parameterless query for the order history.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// AddressResponse is the delivery destination of an order, nil for pickup.
type AddressResponse struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Area     string `json:"area,omitempty"`
	Note     string `json:"note,omitempty"`
}

// TotalsResponse is the pricing snapshot frozen at checkout.
type TotalsResponse struct {
	SubtotalNaira    int `json:"subtotalNaira"`
	DeliveryFeeNaira int `json:"deliveryFeeNaira"`
	DiscountNaira    int `json:"discountNaira"`
	TipNaira         int `json:"tipNaira"`
	TotalNaira       int `json:"totalNaira"`
}

// OrderEventResponse is one entry of the status history.
type OrderEventResponse struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
}

// OrderResponse is one placed order.
type OrderResponse struct {
	ID          string               `json:"id"`
	Number      string               `json:"number"`
	Type        string               `json:"type"`
	Status      string               `json:"status"`
	StatusLabel string               `json:"statusLabel"`
	PlacedAt    time.Time            `json:"placedAt"`
	Lines       []CartLineResponse   `json:"lines"`
	Address     *AddressResponse     `json:"address,omitempty"`
	Totals      TotalsResponse       `json:"totals"`
	PromoCode   string               `json:"promoCode,omitempty"`
	Events      []OrderEventResponse `json:"events"`
}

// GetOrdersQueryResponse is the order history payload, newest first.
type GetOrdersQueryResponse struct {
	Orders []OrderResponse `json:"orders"`
}
