package ports

import (
	"context"

	"yumyum/internal/core/domain/model/cart"
)

// CartRepository defines the persistence contract for the session cart.
// The store holds exactly one cart document; there is no per-customer
// identity at this layer.
type CartRepository interface {
	// Get retrieves the current cart. A missing or corrupt document yields
	// an empty cart, never an error about the stored bytes.
	Get(ctx context.Context) (*cart.Cart, error)

	// Save persists the cart, replacing the previous document.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
