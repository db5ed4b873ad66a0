package queries

import (
	"context"
	"encoding/json"

	"yumyum/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// GetMenuQueryHandler retrieves the menu document from the database. A
// missing or unreadable document answers with the seed menu, so the
// storefront is never empty.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the menu query. Items keep their stored order; the optional
// category filter drops items from other categories but always returns the
// full category list.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	body, err := loadDocument(ctx, h.db, menuDocumentKey)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	var response GetMenuQueryResponse
	if body == nil || json.Unmarshal(body, &response) != nil {
		response = seedMenuResponse()
	}

	if slug := query.CategorySlug(); slug != "" {
		filtered := make([]ItemResponse, 0, len(response.Items))
		for _, item := range response.Items {
			if item.CategorySlug == slug {
				filtered = append(filtered, item)
			}
		}
		response.Items = filtered
	}

	return response, nil
}

// seedMenuResponse shapes the seed catalog into the query response.
func seedMenuResponse() GetMenuQueryResponse {
	catalog := menu.SeedCatalog()

	response := GetMenuQueryResponse{
		Categories: make([]CategoryResponse, 0, len(catalog.Categories())),
		Items:      make([]ItemResponse, 0, len(catalog.Items())),
	}
	for _, c := range catalog.Categories() {
		response.Categories = append(response.Categories, CategoryResponse{Slug: c.Slug, Name: c.Name})
	}
	for _, i := range catalog.Items() {
		response.Items = append(response.Items, ItemResponse{
			ID:           i.ID,
			Name:         i.Name,
			Description:  i.Description,
			PriceNaira:   i.PriceNaira,
			CategorySlug: i.CategorySlug,
			Image:        i.Image,
			InStock:      i.InStock,
			PrepMinutes:  i.PrepMinutes,
			Badge:        string(i.Badge),
			Spicy:        i.Spicy,
		})
	}
	return response
}
