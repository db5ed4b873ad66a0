package commands

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var (
	ErrDeleteCategoryCommandIsNotConstructed = errors.New(
		"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
	)
	ErrCategorySlugIsRequired = errors.New("category slug is required")
)

// DeleteCategoryCommand represents an admin request to remove a menu
// category. A category that still has items cannot be deleted; the handler
// surfaces a referential conflict instead.
type DeleteCategoryCommand struct { //nolint:recvcheck //using for validation
	slug string

	guard guard.ConstructorGuard
}

// NewDeleteCategoryCommand creates a command to delete a category.
func NewDeleteCategoryCommand(slug string) (DeleteCategoryCommand, error) {
	if slug == "" {
		return DeleteCategoryCommand{}, ErrCategorySlugIsRequired
	}

	return DeleteCategoryCommand{
		slug:  slug,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

// Slug returns the slug of the category to delete.
func (c DeleteCategoryCommand) Slug() string {
	return c.slug
}
