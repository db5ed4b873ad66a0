package commands

import (
	"context"
)

// RemoveCartItemCommandHandler loads the cart, drops one line and persists
// the result within a single transaction.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for removing cart lines.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-cart-item command.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, command RemoveCartItemCommand) error {
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

	cartAggregate.Remove(command.ItemID())

	if err = cartRepo.Save(ctx, cartAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
