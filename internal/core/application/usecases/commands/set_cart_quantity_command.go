package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrSetCartQuantityCommandIsNotConstructed = errors.New(
	"SetCartQuantityCommand must be created via NewSetCartQuantityCommand constructor",
)

// SetCartQuantityCommand represents a request to overwrite the quantity of an
// existing cart line. Setting the quantity of an item that is not in the cart
// is a no-op; it never creates a line.
type SetCartQuantityCommand struct { //nolint:recvcheck //using for validation
	itemID   string
	quantity int

	guard guard.ConstructorGuard
}

// NewSetCartQuantityCommand creates a command to set a line's quantity.
// The item id must be non-empty; the quantity is clamped by the aggregate.
func NewSetCartQuantityCommand(itemID string, quantity int) (SetCartQuantityCommand, error) {
	cmd := SetCartQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if itemID == "" {
		return SetCartQuantityCommand{}, ErrItemIDIsRequired
	}
	cmd.itemID = itemID
	cmd.quantity = quantity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartQuantityCommandIsNotConstructed)
}

// ItemID returns the menu item identifier.
func (c SetCartQuantityCommand) ItemID() string {
	return c.itemID
}

// Quantity returns the requested quantity before clamping.
func (c SetCartQuantityCommand) Quantity() int {
	return c.quantity
}
