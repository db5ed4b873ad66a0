// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read the persisted JSON
// documents directly, shaping them into response structs for the transport
// layer.
package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Document keys in the documents table. One key per store, mirroring the
// storage layout of the sqlite adapter.
const (
	cartDocumentKey      = "yumyum_cart_v1"
	menuDocumentKey      = "yumyum_menu_v1"
	ordersDocumentKey    = "yumyum_orders_v1"
	favoritesDocumentKey = "yumyum_favorites_v1"
	sessionDocumentKey   = "yumyum_customer_session_v1"
)

// loadDocument fetches the raw JSON body stored under key. A missing row
// yields (nil, nil): absent documents are an expected state, every reader has
// a defined fallback.
func loadDocument(ctx context.Context, db *gorm.DB, key string) ([]byte, error) {
	var body []byte
	err := db.WithContext(ctx).Raw(`
		SELECT body
		FROM documents
		WHERE key = ?
	`, key).Scan(&body).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

// lineDocument is the persisted shape of one cart or order line.
type lineDocument struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}
