package commands

import (
	"context"
)

// DeleteMenuItemCommandHandler loads the catalog, removes one item and
// persists the result within a single transaction.
type DeleteMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for item deletion.
func NewDeleteMenuItemCommandHandler(uowFactory CatalogUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete-menu-item command. Deleting an unknown id is a
// no-op.
func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, command DeleteMenuItemCommand) error {
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

	catalogRepo := uow.CatalogRepository()

	catalog, err := catalogRepo.Get(ctx)
	if err != nil {
		return err
	}

	catalog.DeleteItem(command.ItemID())

	if err = catalogRepo.Save(ctx, catalog); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
