package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrClearFavoritesCommandIsNotConstructed = errors.New(
	"ClearFavoritesCommand must be created via NewClearFavoritesCommand constructor",
)

// ClearFavoritesCommand represents a request to empty the favorites list.
// Clearing an already-empty list is a no-op.
type ClearFavoritesCommand struct {
	guard guard.ConstructorGuard
}

// NewClearFavoritesCommand creates a parameterless command to empty the
// favorites list.
func NewClearFavoritesCommand() ClearFavoritesCommand {
	return ClearFavoritesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ClearFavoritesCommand) Validate() error {
	return c.guard.Validate(ErrClearFavoritesCommandIsNotConstructed)
}
