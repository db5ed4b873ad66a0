package commands

import (
	"context"
)

// ClearCartCommandHandler empties the cart within a single transaction.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for clearing the cart.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear-cart command.
func (h ClearCartCommandHandler) Handle(ctx context.Context, command ClearCartCommand) error {
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

	cartRepo := uow.CartRepository()

	cartAggregate, err := cartRepo.Get(ctx)
	if err != nil {
		return err
	}

	cartAggregate.Clear()

	if err = cartRepo.Save(ctx, cartAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
