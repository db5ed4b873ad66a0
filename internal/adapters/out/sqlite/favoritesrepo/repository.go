// Package favoritesrepo persists the favorites list as a JSON array document.
package favoritesrepo

import (
	"context"
	"encoding/json"

	"yumyum/internal/adapters/out/sqlite/documentstore"
	"yumyum/internal/core/domain/model/favorites"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// GormFavoritesRepository implements FavoritesRepository on the document
// store.
type GormFavoritesRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormFavoritesRepository creates a new GORM favorites repository.
func NewGormFavoritesRepository(db *gorm.DB, tracker aggregateTracker) *GormFavoritesRepository {
	return &GormFavoritesRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the favorites list. A missing or unreadable document degrades
// to an empty list.
func (r *GormFavoritesRepository) Get(ctx context.Context) (*favorites.List, error) {
	body, err := documentstore.Load(ctx, r.db, documentstore.FavoritesKey)
	if err != nil {
		return nil, err
	}

	var ids []string
	if body != nil {
		_ = json.Unmarshal(body, &ids)
	}

	return favorites.RestoreList(ids), nil
}

// Save persists the list, replacing the previous document.
func (r *GormFavoritesRepository) Save(ctx context.Context, aggregate *favorites.List) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(aggregate.IDs())
	if err != nil {
		return err
	}

	if err = documentstore.Save(ctx, r.db, documentstore.FavoritesKey, body); err != nil {
		return err
	}

	r.tracker.TrackAggregate(documentstore.FavoritesKey, aggregate)
	return nil
}
