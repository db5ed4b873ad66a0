package commands

import (
	"context"
)

// ToggleFavoriteCommandHandler loads the favorites list, flips one item's
// membership and persists the result within a single transaction.
type ToggleFavoriteCommandHandler struct {
	uowFactory FavoritesUoWFactory
}

// NewToggleFavoriteCommandHandler creates a handler for favorite toggles.
func NewToggleFavoriteCommandHandler(uowFactory FavoritesUoWFactory) ToggleFavoriteCommandHandler {
	return ToggleFavoriteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle-favorite command and reports whether the item
// is favorited after the call.
func (h ToggleFavoriteCommandHandler) Handle(ctx context.Context, command ToggleFavoriteCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	favoritesRepo := uow.FavoritesRepository()

	list, err := favoritesRepo.Get(ctx)
	if err != nil {
		return false, err
	}

	favorited, err := list.Toggle(command.ItemID())
	if err != nil {
		return false, err
	}

	if err = favoritesRepo.Save(ctx, list); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return favorited, nil
}
