package menu

import (
	"fmt"

	"yumyum/internal/pkg/errs"
)

// Badge is an optional merchandising label shown on menu cards.
type Badge string

const (
	BadgeNone    Badge = ""
	BadgePopular Badge = "Popular"
	BadgeNew     Badge = "New"
	BadgeValue   Badge = "Value"
)

// Validate checks the badge against the recognized set. The empty badge is
// valid and means "no badge".
func (b Badge) Validate() error {
	switch b {
	case BadgeNone, BadgePopular, BadgeNew, BadgeValue:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("badge",
			fmt.Errorf("%q is not a recognized badge", string(b)))
	}
}

// Category groups menu items under a URL-safe slug.
type Category struct {
	Slug string
	Name string
}

// Validate checks the category's required fields.
func (c Category) Validate() error {
	if c.Slug == "" {
		return errs.NewValueIsRequiredError("category slug")
	}
	if c.Name == "" {
		return errs.NewValueIsRequiredError("category name")
	}
	return nil
}

// Item is a sellable product. PriceNaira is an integer amount in the smallest
// currency unit; PrepMinutes of zero means "not specified".
type Item struct {
	ID           string
	Name         string
	Description  string
	PriceNaira   int
	CategorySlug string
	Image        string
	InStock      bool
	PrepMinutes  int
	Badge        Badge
	Spicy        bool
}

// Validate checks the item's required fields and value ranges. It is applied
// on admin upserts; restore from persistence coerces instead (see
// sanitizeItems).
func (i Item) Validate() error {
	if i.ID == "" {
		return errs.NewValueIsRequiredError("item id")
	}
	if i.Name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.CategorySlug == "" {
		return errs.NewValueIsRequiredError("item categorySlug")
	}
	if i.PriceNaira < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priceNaira",
			fmt.Errorf("%d is negative", i.PriceNaira))
	}
	if i.PrepMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("prepMinutes",
			fmt.Errorf("%d is negative", i.PrepMinutes))
	}
	return i.Badge.Validate()
}
