package cart

import (
	"errors"

	"yumyum/internal/pkg/errs"
	"yumyum/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Cart is the aggregate holding the current session's line items. All
// mutations preserve the package invariants: unique item ids and quantities
// in [MinQuantity, MaxQuantity].
type Cart struct {
	lines []Line

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		lines: make([]Line, 0),
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreCart rebuilds a cart from persisted (and therefore untrusted) lines.
// The input runs through the same sanitize pipeline as Replace, so corrupt or
// stale data degrades to a smaller valid cart instead of failing.
func RestoreCart(lines []Line) *Cart {
	c := NewCart()
	c.lines = SanitizeLines(lines)
	return c
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemsCount returns the sum of all line quantities, the badge number shown
// on the cart icon.
func (c *Cart) ItemsCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Add puts quantity of the given item into the cart. If a line for the item
// already exists its quantity becomes clamp(existing+quantity), otherwise a
// new line is appended. The quantity argument itself is clamped first, so
// Add(id, 0) still adds one.
func (c *Cart) Add(itemID string, quantity int) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("itemId")
	}

	quantity = ClampQuantity(quantity)
	for i, l := range c.lines {
		if l.itemID == itemID {
			c.lines[i].quantity = ClampQuantity(l.quantity + quantity)
			return nil
		}
	}

	c.lines = append(c.lines, Line{itemID: itemID, quantity: quantity})
	return nil
}

// SetQuantity overwrites the quantity of an existing line, clamped into range.
// A missing line is a no-op: decrementing below one never removes the line,
// callers invoke Remove explicitly for that.
func (c *Cart) SetQuantity(itemID string, quantity int) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("itemId")
	}

	for i, l := range c.lines {
		if l.itemID == itemID {
			c.lines[i].quantity = ClampQuantity(quantity)
			return nil
		}
	}
	return nil
}

// Remove deletes the line for the given item if present, no-op otherwise.
func (c *Cart) Remove(itemID string) {
	for i, l := range c.lines {
		if l.itemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

// Replace swaps the cart content for an arbitrary line list, typically the
// snapshot of a past order being reordered. The list is sanitized exactly
// like persisted state, which makes Replace idempotent.
func (c *Cart) Replace(lines []Line) {
	c.lines = SanitizeLines(lines)
}
