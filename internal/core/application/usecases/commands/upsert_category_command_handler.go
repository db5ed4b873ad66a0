package commands

import (
	"context"
)

// UpsertCategoryCommandHandler loads the catalog, applies the category upsert
// and persists the result within a single transaction.
type UpsertCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpsertCategoryCommandHandler creates a handler for category upserts.
func NewUpsertCategoryCommandHandler(uowFactory CatalogUoWFactory) UpsertCategoryCommandHandler {
	return UpsertCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upsert-category command.
func (h UpsertCategoryCommandHandler) Handle(ctx context.Context, command UpsertCategoryCommand) error {
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

	if err = catalog.UpsertCategory(command.Category()); err != nil {
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
