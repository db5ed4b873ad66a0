package commands

import (
	"errors"

	"yumyum/internal/core/domain/model/cart"
	"yumyum/internal/pkg/guard"
)

var ErrReplaceCartCommandIsNotConstructed = errors.New(
	"ReplaceCartCommand must be created via NewReplaceCartCommand constructor",
)

// ReplaceCartCommand represents a request to swap the whole cart content for
// a given line list, typically a past order's snapshot being reordered. The
// lines run through the standard sanitize pipeline, so duplicates merge and
// blanks drop.
type ReplaceCartCommand struct { //nolint:recvcheck //using for validation
	lines []cart.Line

	guard guard.ConstructorGuard
}

// NewReplaceCartCommand creates a command to replace the cart content.
// An empty line list is valid and clears the cart.
func NewReplaceCartCommand(lines []cart.Line) ReplaceCartCommand {
	snapshot := make([]cart.Line, len(lines))
	copy(snapshot, lines)

	return ReplaceCartCommand{
		lines: snapshot,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReplaceCartCommand) Validate() error {
	return c.guard.Validate(ErrReplaceCartCommandIsNotConstructed)
}

// Lines returns the replacement lines before sanitizing.
func (c ReplaceCartCommand) Lines() []cart.Line {
	out := make([]cart.Line, len(c.lines))
	copy(out, c.lines)
	return out
}
