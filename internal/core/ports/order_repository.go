package ports

import (
	"context"

	"yumyum/internal/core/domain/model/kernel"
	"yumyum/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are append-mostly: new orders arrive at checkout and existing ones
// only change status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. The order must be
	// valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The order
	// must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
