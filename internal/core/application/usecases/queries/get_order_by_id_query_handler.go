package queries

import (
	"context"
	"encoding/json"

	"yumyum/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order from the orders document.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound (wrapped) when no
// order carries the requested id.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	body, err := loadDocument(ctx, h.db, ordersDocumentKey)
	if err != nil {
		return OrderResponse{}, err
	}

	var documents []orderDocument
	if body != nil {
		_ = json.Unmarshal(body, &documents)
	}

	wanted := query.OrderID().String()
	for _, document := range documents {
		if document.ID == wanted {
			return document.toResponse(), nil
		}
	}

	return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
}
