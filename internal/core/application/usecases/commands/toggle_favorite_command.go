package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrToggleFavoriteCommandIsNotConstructed = errors.New(
	"ToggleFavoriteCommand must be created via NewToggleFavoriteCommand constructor",
)

// ToggleFavoriteCommand represents a request to flip a menu item's membership
// in the favorites list.
type ToggleFavoriteCommand struct { //nolint:recvcheck //using for validation
	itemID string

	guard guard.ConstructorGuard
}

// NewToggleFavoriteCommand creates a command to toggle a favorite.
func NewToggleFavoriteCommand(itemID string) (ToggleFavoriteCommand, error) {
	if itemID == "" {
		return ToggleFavoriteCommand{}, ErrItemIDIsRequired
	}

	return ToggleFavoriteCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleFavoriteCommand) Validate() error {
	return c.guard.Validate(ErrToggleFavoriteCommandIsNotConstructed)
}

// ItemID returns the menu item identifier.
func (c ToggleFavoriteCommand) ItemID() string {
	return c.itemID
}
