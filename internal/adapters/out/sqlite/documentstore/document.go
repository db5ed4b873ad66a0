// Package documentstore persists each aggregate as one JSON document in a
// key/value table. The layout deliberately mirrors the browser-storage scheme
// the storefront started with: one well-known key per store, whole-document
// replace on every write, and a defined fallback for readers when a document
// is missing or unreadable.
package documentstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document keys, one per store. The v1 suffix is the document schema version;
// bumping it abandons old documents instead of migrating them.
const (
	CartKey      = "yumyum_cart_v1"
	MenuKey      = "yumyum_menu_v1"
	OrdersKey    = "yumyum_orders_v1"
	FavoritesKey = "yumyum_favorites_v1"
	SessionKey   = "yumyum_customer_session_v1"
)

// DocumentDTO represents one row of the documents table.
type DocumentDTO struct {
	Key       string `gorm:"primaryKey"`
	Body      string
	UpdatedAt time.Time
}

// TableName specifies the database table name for documents.
func (DocumentDTO) TableName() string {
	return "documents"
}

// Load fetches the JSON body stored under key. A missing row yields
// (nil, nil); absence is an expected state with a per-store fallback, not an
// error.
func Load(ctx context.Context, db *gorm.DB, key string) ([]byte, error) {
	var dto DocumentDTO
	err := db.WithContext(ctx).First(&dto, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(dto.Body), nil
}

// Save stores body under key, replacing any previous document.
func Save(ctx context.Context, db *gorm.DB, key string, body []byte) error {
	dto := DocumentDTO{
		Key:       key,
		Body:      string(body),
		UpdatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).
		Create(&dto).Error
}

// Delete removes the document under key. Deleting an absent document is a
// no-op.
func Delete(ctx context.Context, db *gorm.DB, key string) error {
	return db.WithContext(ctx).Delete(&DocumentDTO{}, "key = ?", key).Error
}
