package commands

import (
	"context"
	"errors"
	"time"

	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/core/domain/services"
)

// ErrCheckoutNotAllowed is returned when the checkout gate fails: the cart is
// empty, a line no longer resolves against the menu, or a delivery address is
// incomplete.
var ErrCheckoutNotAllowed = errors.New("checkout is not allowed for the current cart")

// CheckoutCommandHandler orchestrates order placement. It prices the cart
// against the live catalog, builds the order aggregate and clears the cart,
// all inside one transaction so the order store and the cart can never
// disagree about whether checkout happened.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	calculator services.PricingCalculator
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	calculator services.PricingCalculator,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the checkout command and returns the placed order.
//
// Returns ErrCheckoutNotAllowed when the pricing verdict blocks checkout,
// a validation error for bad promo codes, or the first persistence error.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	catalogRepo := uow.CatalogRepository()
	orderRepo := uow.OrderRepository()

	cartAggregate, err := cartRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := catalogRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := h.calculator.Quote(services.QuoteInput{
		Lines:     cartAggregate.Lines(),
		Pricer:    catalog,
		OrderType: command.OrderType(),
		PromoCode: command.PromoCode(),
		TipNaira:  command.TipNaira(),
		Address:   command.Address(),
	})
	if err != nil {
		return nil, err
	}
	if !quote.CanCheckout {
		return nil, ErrCheckoutNotAllowed
	}

	placed, err := order.NewOrder(
		command.OrderID(),
		order.NewNumber(),
		command.OrderType(),
		cartAggregate.Lines(),
		command.Address(),
		quote.Totals,
		quote.PromoCode,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	cartAggregate.Clear()
	if err = cartRepo.Save(ctx, cartAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
