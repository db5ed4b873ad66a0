package commands

import (
	"context"
)

// SetCartQuantityCommandHandler loads the cart, overwrites one line's
// quantity and persists the result within a single transaction.
type SetCartQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewSetCartQuantityCommandHandler creates a handler for quantity updates.
func NewSetCartQuantityCommandHandler(uowFactory CartUoWFactory) SetCartQuantityCommandHandler {
	return SetCartQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set-cart-quantity command.
func (h SetCartQuantityCommandHandler) Handle(ctx context.Context, command SetCartQuantityCommand) error {
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

	if err = cartAggregate.SetQuantity(command.ItemID(), command.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, cartAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
