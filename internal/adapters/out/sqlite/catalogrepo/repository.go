package catalogrepo

import (
	"context"
	"encoding/json"
	"log/slog"

	"yumyum/internal/adapters/out/sqlite/documentstore"
	"yumyum/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// GormCatalogRepository implements CatalogRepository on the document store.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the catalog. A missing or unreadable document yields the seed
// catalog.
func (r *GormCatalogRepository) Get(ctx context.Context) (*menu.Catalog, error) {
	body, err := documentstore.Load(ctx, r.db, documentstore.MenuKey)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return menu.SeedCatalog(), nil
	}

	var dto catalogDTO
	if json.Unmarshal(body, &dto) != nil {
		slog.Warn("discarding unreadable catalog document, falling back to seed",
			"key", documentstore.MenuKey)
		return menu.SeedCatalog(), nil
	}

	return toDomain(dto), nil
}

// Save persists the catalog, replacing the previous document.
func (r *GormCatalogRepository) Save(ctx context.Context, aggregate *menu.Catalog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	if err = documentstore.Save(ctx, r.db, documentstore.MenuKey, body); err != nil {
		return err
	}

	r.tracker.TrackAggregate(documentstore.MenuKey, aggregate)
	return nil
}
