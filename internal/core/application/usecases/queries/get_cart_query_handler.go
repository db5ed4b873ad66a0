package queries

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves the cart document from the database. A
// missing or unreadable document answers with an empty cart.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	body, err := loadDocument(ctx, h.db, cartDocumentKey)
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	var lines []lineDocument
	if body != nil {
		_ = json.Unmarshal(body, &lines)
	}

	response := GetCartQueryResponse{
		Lines: make([]CartLineResponse, 0, len(lines)),
	}
	for _, line := range lines {
		response.Lines = append(response.Lines, CartLineResponse{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
		response.ItemsCount += line.Quantity
	}

	return response, nil
}
