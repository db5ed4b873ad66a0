package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to drop one line from the cart.
// Removing an item that is not in the cart is a no-op.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	itemID string

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(itemID string) (RemoveCartItemCommand, error) {
	if itemID == "" {
		return RemoveCartItemCommand{}, ErrItemIDIsRequired
	}

	return RemoveCartItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// ItemID returns the menu item identifier.
func (c RemoveCartItemCommand) ItemID() string {
	return c.itemID
}
