package commands

import (
	"context"
)

// UpsertMenuItemCommandHandler loads the catalog, applies the item upsert and
// persists the result within a single transaction.
type UpsertMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpsertMenuItemCommandHandler creates a handler for item upserts.
func NewUpsertMenuItemCommandHandler(uowFactory CatalogUoWFactory) UpsertMenuItemCommandHandler {
	return UpsertMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upsert-menu-item command.
func (h UpsertMenuItemCommandHandler) Handle(ctx context.Context, command UpsertMenuItemCommand) error {
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

	if err = catalog.UpsertItem(command.Item()); err != nil {
		return err
	}

	if err = catalogRepo.Save(ctx, catalog); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
