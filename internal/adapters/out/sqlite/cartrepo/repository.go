// Package cartrepo persists the cart aggregate as a JSON array document.
package cartrepo

import (
	"context"
	"encoding/json"

	"yumyum/internal/adapters/out/sqlite/documentstore"
	"yumyum/internal/core/domain/model/cart"

	"gorm.io/gorm"
)

// lineDTO is one entry of the cart document, which is a bare JSON array of
// lines.
type lineDTO struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// GormCartRepository implements CartRepository on the document store.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the cart. A missing or unreadable document degrades to an
// empty cart; RestoreCart sanitizes whatever lines survive.
func (r *GormCartRepository) Get(ctx context.Context) (*cart.Cart, error) {
	body, err := documentstore.Load(ctx, r.db, documentstore.CartKey)
	if err != nil {
		return nil, err
	}

	var dtos []lineDTO
	if body != nil {
		_ = json.Unmarshal(body, &dtos)
	}

	lines := make([]cart.Line, 0, len(dtos))
	for _, l := range dtos {
		lines = append(lines, cart.NewLine(l.ItemID, l.Quantity))
	}

	return cart.RestoreCart(lines), nil
}

// Save persists the cart, replacing the previous document.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dtos := make([]lineDTO, 0, len(aggregate.Lines()))
	for _, l := range aggregate.Lines() {
		dtos = append(dtos, lineDTO{ItemID: l.ItemID(), Quantity: l.Quantity()})
	}

	body, err := json.Marshal(dtos)
	if err != nil {
		return err
	}

	if err = documentstore.Save(ctx, r.db, documentstore.CartKey, body); err != nil {
		return err
	}

	r.tracker.TrackAggregate(documentstore.CartKey, aggregate)
	return nil
}
