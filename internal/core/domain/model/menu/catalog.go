package menu

import (
	"errors"

	"yumyum/internal/pkg/errs"
	"yumyum/internal/pkg/guard"
)

// ErrCatalogIsNotConstructed is returned when a Catalog instance was not
// created through NewCatalog, RestoreCatalog or SeedCatalog.
var ErrCatalogIsNotConstructed = errors.New(
	"Catalog must be created via NewCatalog, RestoreCatalog or SeedCatalog",
)

// Catalog is the aggregate holding categories and items. It keeps an index by
// item id for O(1) lookups and stays deduplicated by key after every mutation.
type Catalog struct {
	categories []Category
	items      []Item
	byID       map[string]int

	guard guard.ConstructorGuard
}

// NewCatalog creates a catalog from the given categories and items. Both
// lists run through the dedup-by-key sanitize step; later duplicates of a key
// are discarded.
func NewCatalog(categories []Category, items []Item) *Catalog {
	c := &Catalog{
		categories: sanitizeCategories(categories),
		items:      sanitizeItems(items),
		guard:      guard.NewConstructorGuard(),
	}
	c.reindex()
	return c
}

// RestoreCatalog rebuilds a catalog from persisted (untrusted) state, coercing
// rather than rejecting: entries without a key are dropped, negative prices
// and prep times clamp to zero, unrecognized badges clear.
func RestoreCatalog(categories []Category, items []Item) *Catalog {
	return NewCatalog(categories, items)
}

// SeedCatalog creates the catalog holding the canonical dataset shipped with
// the system.
func SeedCatalog() *Catalog {
	return NewCatalog(seedCategories(), seedItems())
}

// Validate ensures the catalog was created through a constructor.
func (c *Catalog) Validate() error {
	if c == nil {
		return ErrCatalogIsNotConstructed
	}
	return c.guard.Validate(ErrCatalogIsNotConstructed)
}

// Categories returns a copy of all categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Items returns a copy of all items in display order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemByID looks an item up by id in O(1). The second result reports whether
// the item exists.
func (c *Catalog) ItemByID(id string) (Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// ItemsByCategory returns all items whose CategorySlug matches slug.
func (c *Catalog) ItemsByCategory(slug string) []Item {
	out := make([]Item, 0)
	for _, it := range c.items {
		if it.CategorySlug == slug {
			out = append(out, it)
		}
	}
	return out
}

// PriceOf resolves an item's price by id. It satisfies the pricing
// calculator's ItemPricer contract; a missing item reports ok=false and
// contributes nothing to a subtotal.
func (c *Catalog) PriceOf(itemID string) (int, bool) {
	it, ok := c.ItemByID(itemID)
	if !ok {
		return 0, false
	}
	return it.PriceNaira, true
}

// UpsertItem inserts the item if its id is unseen, otherwise fully replaces
// the stored item (last write wins). The item must pass validation.
func (c *Catalog) UpsertItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if idx, ok := c.byID[item.ID]; ok {
		c.items[idx] = item
		return nil
	}

	c.items = append(c.items, item)
	c.byID[item.ID] = len(c.items) - 1
	return nil
}

// UpsertCategory inserts the category if its slug is unseen, otherwise fully
// replaces it.
func (c *Catalog) UpsertCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	for i, existing := range c.categories {
		if existing.Slug == category.Slug {
			c.categories[i] = category
			return nil
		}
	}

	c.categories = append(c.categories, category)
	return nil
}

// DeleteItem removes the item unconditionally; a missing id is a no-op.
// Historical order snapshots are unaffected, they carry their own line data.
func (c *Catalog) DeleteItem(id string) {
	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.reindex()
			return
		}
	}
}

// DeleteCategory removes the category identified by slug. While at least one
// item still references the slug the operation is rejected with a referential
// conflict and state is unchanged; the caller must surface the reason.
func (c *Catalog) DeleteCategory(slug string) error {
	count := len(c.ItemsByCategory(slug))
	if count > 0 {
		return errs.NewReferentialConflictError("category",
			"category has items; move or delete its items first")
	}

	for i, cat := range c.categories {
		if cat.Slug == slug {
			c.categories = append(c.categories[:i], c.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

// Reset discards all state and reloads the canonical seed dataset.
func (c *Catalog) Reset() {
	c.categories = sanitizeCategories(seedCategories())
	c.items = sanitizeItems(seedItems())
	c.reindex()
}

func (c *Catalog) reindex() {
	c.byID = make(map[string]int, len(c.items))
	for i, it := range c.items {
		c.byID[it.ID] = i
	}
}

// sanitizeCategories drops entries without a slug and deduplicates by slug,
// keeping the first occurrence. A blank name falls back to the slug.
func sanitizeCategories(categories []Category) []Category {
	seen := make(map[string]bool, len(categories))
	out := make([]Category, 0, len(categories))
	for _, cat := range categories {
		if cat.Slug == "" || seen[cat.Slug] {
			continue
		}
		seen[cat.Slug] = true
		if cat.Name == "" {
			cat.Name = cat.Slug
		}
		out = append(out, cat)
	}
	return out
}

// sanitizeItems drops entries without an id and deduplicates by id, keeping
// the first occurrence. Out-of-range numeric fields clamp to zero and
// unrecognized badges clear, so persisted garbage degrades instead of
// poisoning the catalog.
func sanitizeItems(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID == "" || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		if it.PriceNaira < 0 {
			it.PriceNaira = 0
		}
		if it.PrepMinutes < 0 {
			it.PrepMinutes = 0
		}
		if it.Badge.Validate() != nil {
			it.Badge = BadgeNone
		}
		out = append(out, it)
	}
	return out
}
