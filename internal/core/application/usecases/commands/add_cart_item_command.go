package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrItemIDIsRequired = errors.New("itemId is required")
)

// AddCartItemCommand represents a request to put a quantity of a menu item
// into the cart. Adding an item that is already in the cart increments the
// existing line instead of creating a second one.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand("jollof-rice", 2)
//	if err != nil {
//	    return fmt.Errorf("invalid cart input: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	itemID   string
	quantity int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to the cart.
// The item id must be non-empty; the quantity is clamped by the aggregate,
// so any value is accepted here.
func NewAddCartItemCommand(itemID string, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return AddCartItemCommand{}, err
	}
	cmd.quantity = quantity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// ItemID returns the menu item identifier.
func (c AddCartItemCommand) ItemID() string {
	return c.itemID
}

// Quantity returns the requested quantity before clamping.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setItemID(itemID string) error {
	if itemID == "" {
		return ErrItemIDIsRequired
	}

	c.itemID = itemID
	return nil
}
