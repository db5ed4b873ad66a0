package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrSignOutCommandIsNotConstructed = errors.New(
	"SignOutCommand must be created via NewSignOutCommand constructor",
)

// SignOutCommand represents a request to end the customer session. Signing
// out with no active session is a no-op.
type SignOutCommand struct {
	guard guard.ConstructorGuard
}

// NewSignOutCommand creates a parameterless command to end the session.
func NewSignOutCommand() SignOutCommand {
	return SignOutCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SignOutCommand) Validate() error {
	return c.guard.Validate(ErrSignOutCommandIsNotConstructed)
}
