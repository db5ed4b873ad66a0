package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrResetCatalogCommandIsNotConstructed = errors.New(
	"ResetCatalogCommand must be created via NewResetCatalogCommand constructor",
)

// ResetCatalogCommand represents an admin request to discard all menu edits
// and restore the seed catalog.
type ResetCatalogCommand struct {
	guard guard.ConstructorGuard
}

// NewResetCatalogCommand creates a parameterless command to reset the menu.
func NewResetCatalogCommand() ResetCatalogCommand {
	return ResetCatalogCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ResetCatalogCommand) Validate() error {
	return c.guard.Validate(ErrResetCatalogCommandIsNotConstructed)
}
