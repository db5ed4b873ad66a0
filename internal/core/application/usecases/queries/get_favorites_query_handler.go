package queries

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

// GetFavoritesQueryHandler retrieves the favorites document from the
// database. A missing or unreadable document answers with an empty list.
type GetFavoritesQueryHandler struct {
	db *gorm.DB
}

// NewGetFavoritesQueryHandler creates a handler for favorites queries.
func NewGetFavoritesQueryHandler(db *gorm.DB) GetFavoritesQueryHandler {
	return GetFavoritesQueryHandler{db: db}
}

// Handle executes the favorites query.
func (h GetFavoritesQueryHandler) Handle(ctx context.Context, query GetFavoritesQuery) (GetFavoritesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFavoritesQueryResponse{}, err
	}

	body, err := loadDocument(ctx, h.db, favoritesDocumentKey)
	if err != nil {
		return GetFavoritesQueryResponse{}, err
	}

	itemIDs := make([]string, 0)
	if body != nil {
		_ = json.Unmarshal(body, &itemIDs)
	}

	return GetFavoritesQueryResponse{ItemIDs: itemIDs}, nil
}
