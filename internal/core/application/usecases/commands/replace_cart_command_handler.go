package commands

import (
	"context"
)

// ReplaceCartCommandHandler swaps the cart content within a single
// transaction. Used by the reorder flow.
type ReplaceCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewReplaceCartCommandHandler creates a handler for cart replacement.
func NewReplaceCartCommandHandler(uowFactory CartUoWFactory) ReplaceCartCommandHandler {
	return ReplaceCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replace-cart command.
func (h ReplaceCartCommandHandler) Handle(ctx context.Context, command ReplaceCartCommand) error {
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

	cartAggregate.Replace(command.Lines())

	if err = cartRepo.Save(ctx, cartAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
