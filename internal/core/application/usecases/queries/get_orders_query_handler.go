package queries

import (
	"context"
	"encoding/json"
	"time"

	"yumyum/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// orderDocument is the persisted shape of one order inside the orders
// document. The document itself is a JSON array, newest order first.
type orderDocument struct {
	ID        string               `json:"id"`
	Number    string               `json:"number"`
	Type      string               `json:"type"`
	Status    string               `json:"status"`
	PlacedAt  time.Time            `json:"placedAt"`
	Lines     []lineDocument       `json:"lines"`
	Address   *AddressResponse     `json:"address,omitempty"`
	Totals    TotalsResponse       `json:"totals"`
	PromoCode string               `json:"promoCode,omitempty"`
	Events    []OrderEventResponse `json:"events"`
}

// toResponse shapes a stored order into the query response, deriving the
// display label from the status.
func (d orderDocument) toResponse() OrderResponse {
	lines := make([]CartLineResponse, 0, len(d.Lines))
	for _, line := range d.Lines {
		lines = append(lines, CartLineResponse{ItemID: line.ItemID, Quantity: line.Quantity})
	}

	events := d.Events
	if events == nil {
		events = make([]OrderEventResponse, 0)
	}

	return OrderResponse{
		ID:          d.ID,
		Number:      d.Number,
		Type:        d.Type,
		Status:      d.Status,
		StatusLabel: order.Status(d.Status).Label(),
		PlacedAt:    d.PlacedAt,
		Lines:       lines,
		Address:     d.Address,
		Totals:      d.Totals,
		PromoCode:   d.PromoCode,
		Events:      events,
	}
}

// GetOrdersQueryHandler retrieves the orders document from the database. A
// missing or unreadable document answers with an empty history.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order history queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the order history query. Orders keep their stored order,
// which is newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	body, err := loadDocument(ctx, h.db, ordersDocumentKey)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	var documents []orderDocument
	if body != nil {
		_ = json.Unmarshal(body, &documents)
	}

	response := GetOrdersQueryResponse{
		Orders: make([]OrderResponse, 0, len(documents)),
	}
	for _, document := range documents {
		response.Orders = append(response.Orders, document.toResponse())
	}

	return response, nil
}
