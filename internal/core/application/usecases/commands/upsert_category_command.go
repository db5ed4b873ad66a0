package commands

import (
	"errors"

	"yumyum/internal/core/domain/model/menu"
	"yumyum/internal/pkg/guard"
)

var ErrUpsertCategoryCommandIsNotConstructed = errors.New(
	"UpsertCategoryCommand must be created via NewUpsertCategoryCommand constructor",
)

// UpsertCategoryCommand represents an admin request to create or rename a
// menu category.
type UpsertCategoryCommand struct { //nolint:recvcheck //using for validation
	category menu.Category

	guard guard.ConstructorGuard
}

// NewUpsertCategoryCommand creates a command to upsert a category.
func NewUpsertCategoryCommand(category menu.Category) (UpsertCategoryCommand, error) {
	if err := category.Validate(); err != nil {
		return UpsertCategoryCommand{}, err
	}

	return UpsertCategoryCommand{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpsertCategoryCommandIsNotConstructed)
}

// Category returns the category to store.
func (c UpsertCategoryCommand) Category() menu.Category {
	return c.category
}
