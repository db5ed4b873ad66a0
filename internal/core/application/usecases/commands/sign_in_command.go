package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var (
	ErrSignInCommandIsNotConstructed = errors.New(
		"SignInCommand must be created via NewSignInCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// SignInCommand represents a customer sign-in request. The credential rules
// themselves (email shape, password length) live in the session aggregate;
// the command only rejects blank input.
type SignInCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewSignInCommand creates a command to sign a customer in.
func NewSignInCommand(email, password string) (SignInCommand, error) {
	cmd := SignInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if email == "" {
		return SignInCommand{}, ErrEmailIsRequired
	}
	if password == "" {
		return SignInCommand{}, ErrPasswordIsRequired
	}
	cmd.email = email
	cmd.password = password

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// Email returns the raw email input.
func (c SignInCommand) Email() string {
	return c.email
}

// Password returns the password input. It is checked at sign-in and never
// persisted.
func (c SignInCommand) Password() string {
	return c.password
}
