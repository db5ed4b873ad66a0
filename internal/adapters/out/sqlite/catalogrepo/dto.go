// Package catalogrepo persists the menu catalog as a JSON document and maps
// between the stored shape and the domain aggregate.
package catalogrepo

import (
	"yumyum/internal/core/domain/model/menu"
)

// catalogDTO is the persisted shape of the menu document.
type catalogDTO struct {
	Categories []categoryDTO `json:"categories"`
	Items      []itemDTO     `json:"items"`
}

type categoryDTO struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type itemDTO struct {
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

// fromDomain converts the catalog aggregate to its stored representation.
func fromDomain(catalog *menu.Catalog) catalogDTO {
	dto := catalogDTO{
		Categories: make([]categoryDTO, 0, len(catalog.Categories())),
		Items:      make([]itemDTO, 0, len(catalog.Items())),
	}
	for _, c := range catalog.Categories() {
		dto.Categories = append(dto.Categories, categoryDTO{Slug: c.Slug, Name: c.Name})
	}
	for _, i := range catalog.Items() {
		dto.Items = append(dto.Items, itemDTO{
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
	return dto
}

// toDomain converts a stored document back to the catalog aggregate.
// RestoreCatalog runs the sanitize pipeline, so corrupt entries degrade
// instead of failing.
func toDomain(dto catalogDTO) *menu.Catalog {
	categories := make([]menu.Category, 0, len(dto.Categories))
	for _, c := range dto.Categories {
		categories = append(categories, menu.Category{Slug: c.Slug, Name: c.Name})
	}
	items := make([]menu.Item, 0, len(dto.Items))
	for _, i := range dto.Items {
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
	return menu.RestoreCatalog(categories, items)
}
