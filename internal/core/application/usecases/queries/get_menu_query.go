package queries

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the full menu: categories in display order and every
// item, in stock or not. Optionally filters items to one category.
//
// Example:
//
//	query := NewGetMenuQuery("")
//	handler := NewGetMenuQueryHandler(db)
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get menu: %w", err)
//	}
//	fmt.Printf("%d categories, %d items\n", len(menu.Categories), len(menu.Items))
type GetMenuQuery struct {
	categorySlug string

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for the menu. An empty categorySlug returns
// every item.
func NewGetMenuQuery(categorySlug string) GetMenuQuery {
	return GetMenuQuery{
		categorySlug: categorySlug,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// CategorySlug returns the optional category filter.
func (q GetMenuQuery) CategorySlug() string {
	return q.categorySlug
}

// CategoryResponse is one menu category.
type CategoryResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// ItemResponse is one menu item as shown in the storefront.
type ItemResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceNaira   int    `json:"priceNaira"`
	CategorySlug string `json:"categorySlug"`
	Image        string `json:"image"`
	InStock      bool   `json:"inStock"`
	PrepMinutes  int    `json:"prepMinutes"`
	Badge        string `json:"badge,omitempty"`
	Spicy        bool   `json:"spicy,omitempty"`
}

// GetMenuQueryResponse is the full menu payload.
type GetMenuQueryResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Items      []ItemResponse     `json:"items"`
}
