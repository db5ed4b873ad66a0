package commands

import (
	"context"
)

// AddCartItemCommandHandler loads the cart, applies the add mutation and
// persists the result within a single transaction.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for adding cart items.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-cart-item command. The quantity is clamped into
// the valid range by the cart aggregate.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, command AddCartItemCommand) error {
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

	if err = cartAggregate.Add(command.ItemID(), command.Quantity()); err != nil {
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
