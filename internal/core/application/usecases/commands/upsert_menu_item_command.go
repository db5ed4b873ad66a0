package commands

import (
	"errors"

	"yumyum/internal/core/domain/model/menu"
	"yumyum/internal/pkg/guard"
)

var ErrUpsertMenuItemCommandIsNotConstructed = errors.New(
	"UpsertMenuItemCommand must be created via NewUpsertMenuItemCommand constructor",
)

// UpsertMenuItemCommand represents an admin request to create or replace a
// menu item. Upserts are last-write-wins: an existing item with the same id
// is replaced wholesale.
type UpsertMenuItemCommand struct { //nolint:recvcheck //using for validation
	item menu.Item

	guard guard.ConstructorGuard
}

// NewUpsertMenuItemCommand creates a command to upsert a menu item.
// The item must pass its own validation.
func NewUpsertMenuItemCommand(item menu.Item) (UpsertMenuItemCommand, error) {
	if err := item.Validate(); err != nil {
		return UpsertMenuItemCommand{}, err
	}

	return UpsertMenuItemCommand{
		item:  item,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpsertMenuItemCommandIsNotConstructed)
}

// Item returns the item to store.
func (c UpsertMenuItemCommand) Item() menu.Item {
	return c.item
}
