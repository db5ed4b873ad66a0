package commands

import (
	"context"
)

// ResetCatalogCommandHandler restores the seed catalog within a single
// transaction.
type ResetCatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewResetCatalogCommandHandler creates a handler for catalog resets.
func NewResetCatalogCommandHandler(uowFactory CatalogUoWFactory) ResetCatalogCommandHandler {
	return ResetCatalogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset-catalog command.
func (h ResetCatalogCommandHandler) Handle(ctx context.Context, command ResetCatalogCommand) error {
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

	catalog.Reset()

	if err = catalogRepo.Save(ctx, catalog); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
