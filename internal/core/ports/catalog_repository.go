package ports

import (
	"context"

	"yumyum/internal/core/domain/model/menu"
)

// CatalogRepository defines the persistence contract for the menu catalog.
// A single catalog document holds all categories and items.
type CatalogRepository interface {
	// Get retrieves the catalog. A missing or corrupt document yields the
	// seed catalog so the storefront always has a menu to show.
	Get(ctx context.Context) (*menu.Catalog, error)

	// Save persists the catalog, replacing the previous document.
	Save(ctx context.Context, aggregate *menu.Catalog) error
}
