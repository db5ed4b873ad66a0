package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents an admin request to remove a menu item.
// Deletion is unconditional even when carts or past orders still reference
// the id; those lines surface as unresolved at pricing time instead.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID string

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to delete a menu item.
func NewDeleteMenuItemCommand(itemID string) (DeleteMenuItemCommand, error) {
	if itemID == "" {
		return DeleteMenuItemCommand{}, ErrItemIDIsRequired
	}

	return DeleteMenuItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// ItemID returns the id of the item to delete.
func (c DeleteMenuItemCommand) ItemID() string {
	return c.itemID
}
