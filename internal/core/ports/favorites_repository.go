package ports

import (
	"context"

	"yumyum/internal/core/domain/model/favorites"
)

// FavoritesRepository defines the persistence contract for the favorites
// list. A single document holds the ordered item ids.
type FavoritesRepository interface {
	// Get retrieves the favorites list. A missing or corrupt document
	// yields an empty list.
	Get(ctx context.Context) (*favorites.List, error)

	// Save persists the list, replacing the previous document.
	Save(ctx context.Context, aggregate *favorites.List) error
}
