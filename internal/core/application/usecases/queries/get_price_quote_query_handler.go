package queries

import (
	"context"
	"encoding/json"

	"yumyum/internal/core/domain/model/cart"
	"yumyum/internal/core/domain/model/menu"
	"yumyum/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetPriceQuoteQueryHandler prices the stored cart against the stored menu.
// It is the read-side twin of the checkout command: same calculator, same
// documents, no writes.
type GetPriceQuoteQueryHandler struct {
	db         *gorm.DB
	calculator services.PricingCalculator
}

// NewGetPriceQuoteQueryHandler creates a handler for pricing queries.
func NewGetPriceQuoteQueryHandler(db *gorm.DB, calculator services.PricingCalculator) GetPriceQuoteQueryHandler {
	return GetPriceQuoteQueryHandler{db: db, calculator: calculator}
}

// Handle executes the pricing query. Returns a validation error for an
// unknown promo code or a negative tip.
func (h GetPriceQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetPriceQuoteQuery,
) (GetPriceQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPriceQuoteQueryResponse{}, err
	}

	lines, err := h.loadCartLines(ctx)
	if err != nil {
		return GetPriceQuoteQueryResponse{}, err
	}

	catalog, err := h.loadCatalog(ctx)
	if err != nil {
		return GetPriceQuoteQueryResponse{}, err
	}

	quote, err := h.calculator.Quote(services.QuoteInput{
		Lines:     lines,
		Pricer:    catalog,
		OrderType: query.OrderType(),
		PromoCode: query.PromoCode(),
		TipNaira:  query.TipNaira(),
		Address:   query.Address(),
	})
	if err != nil {
		return GetPriceQuoteQueryResponse{}, err
	}

	return GetPriceQuoteQueryResponse{
		Totals: TotalsResponse{
			SubtotalNaira:    quote.Totals.SubtotalNaira,
			DeliveryFeeNaira: quote.Totals.DeliveryFeeNaira,
			DiscountNaira:    quote.Totals.DiscountNaira,
			TipNaira:         quote.Totals.TipNaira,
			TotalNaira:       quote.Totals.TotalNaira,
		},
		PromoCode:          quote.PromoCode,
		HasUnresolvedLines: quote.HasUnresolvedLines,
		CanCheckout:        quote.CanCheckout,
	}, nil
}

func (h GetPriceQuoteQueryHandler) loadCartLines(ctx context.Context) ([]cart.Line, error) {
	body, err := loadDocument(ctx, h.db, cartDocumentKey)
	if err != nil {
		return nil, err
	}

	var documents []lineDocument
	if body != nil {
		_ = json.Unmarshal(body, &documents)
	}

	lines := make([]cart.Line, 0, len(documents))
	for _, line := range documents {
		lines = append(lines, cart.NewLine(line.ItemID, line.Quantity))
	}
	return cart.SanitizeLines(lines), nil
}

func (h GetPriceQuoteQueryHandler) loadCatalog(ctx context.Context) (*menu.Catalog, error) {
	body, err := loadDocument(ctx, h.db, menuDocumentKey)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return menu.SeedCatalog(), nil
	}

	var document struct {
		Categories []CategoryResponse `json:"categories"`
		Items      []ItemResponse     `json:"items"`
	}
	if json.Unmarshal(body, &document) != nil {
		return menu.SeedCatalog(), nil
	}

	categories := make([]menu.Category, 0, len(document.Categories))
	for _, c := range document.Categories {
		categories = append(categories, menu.Category{Slug: c.Slug, Name: c.Name})
	}
	items := make([]menu.Item, 0, len(document.Items))
	for _, i := range document.Items {
		items = append(items, menu.Item{
			ID:           i.ID,
			Name:         i.Name,
			Description:  i.Description,
			PriceNaira:   i.PriceNaira,
			CategorySlug: i.CategorySlug,
			Image:        i.Image,
			InStock:      i.InStock,
			PrepMinutes:  i.PrepMinutes,
			Badge:        menu.Badge(i.Badge),
			Spicy:        i.Spicy,
		})
	}

	return menu.RestoreCatalog(categories, items), nil
}
