package commands

import (
	"context"
	"time"
)

// AdvanceOrderCommandHandler loads an order, advances it one lifecycle step
// and persists the result within a single transaction.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for advancing orders.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance-order command. A terminal order is saved
// unchanged; the no-op still answers success so callers can poll blindly.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, command AdvanceOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	orderAggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	orderAggregate.Advance(time.Now().UTC())

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
