package queries

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the current cart content.
type GetCartQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a parameterless query for the cart.
func NewGetCartQuery() GetCartQuery {
	return GetCartQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CartLineResponse is one cart line.
type CartLineResponse struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// GetCartQueryResponse is the cart payload. ItemsCount is the sum of all line
// quantities, the number shown on the cart badge.
type GetCartQueryResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	ItemsCount int                `json:"itemsCount"`
}
