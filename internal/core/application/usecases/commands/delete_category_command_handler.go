package commands

import (
	"context"
)

// DeleteCategoryCommandHandler loads the catalog, removes one empty category
// and persists the result within a single transaction.
type DeleteCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteCategoryCommandHandler creates a handler for category deletion.
func NewDeleteCategoryCommandHandler(uowFactory CatalogUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete-category command. Returns
// errs.ErrReferentialConflict (wrapped) while items still reference the
// category.
func (h DeleteCategoryCommandHandler) Handle(ctx context.Context, command DeleteCategoryCommand) error {
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

	if err = catalog.DeleteCategory(command.Slug()); err != nil {
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
