package commands

import (
	"context"
)

// ClearFavoritesCommandHandler empties the favorites list within a single
// transaction.
type ClearFavoritesCommandHandler struct {
	uowFactory FavoritesUoWFactory
}

// NewClearFavoritesCommandHandler creates a handler for clearing favorites.
func NewClearFavoritesCommandHandler(uowFactory FavoritesUoWFactory) ClearFavoritesCommandHandler {
	return ClearFavoritesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear-favorites command.
func (h ClearFavoritesCommandHandler) Handle(ctx context.Context, command ClearFavoritesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	favoritesRepo := uow.FavoritesRepository()

	list, err := favoritesRepo.Get(ctx)
	if err != nil {
		return err
	}

	list.Clear()

	if err = favoritesRepo.Save(ctx, list); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
