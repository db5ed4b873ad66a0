package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty the cart. Clearing an
// already-empty cart is a no-op.
type ClearCartCommand struct {
	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a parameterless command to empty the cart.
func NewClearCartCommand() ClearCartCommand {
	return ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}
