package commands

import (
	"errors"

	"yumyum/internal/core/domain/model/kernel"
	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrTipIsInvalid = errors.New("tip must be zero or positive")
)

// CheckoutCommand represents a request to turn the current cart into a placed
// order. The cart content itself is not part of the command; the handler
// reads it inside the checkout transaction so concurrent cart edits cannot
// slip between pricing and placement.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(kernel.NewUUID(), order.TypeDelivery,
//	    "YUM10", 500, &order.Address{FullName: "Ada Obi", Phone: "0801", Line1: "12 Allen Ave"})
//	if err != nil {
//	    return fmt.Errorf("invalid checkout input: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, calculator)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("order %s placed", placed.Number())
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderType order.Type
	promoCode string
	tipNaira  int
	address   *order.Address

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place an order from the cart.
// Validates the order id, order type and tip; the address rules (required
// for delivery, absent for pickup) are enforced by the order aggregate.
func NewCheckoutCommand(
	orderID kernel.UUID,
	orderType order.Type,
	promoCode string,
	tipNaira int,
	address *order.Address,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderType(orderType),
		cmd.setTipNaira(tipNaira),
	); err != nil {
		return CheckoutCommand{}, err
	}

	cmd.promoCode = promoCode
	if address != nil {
		a := *address
		cmd.address = &a
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns delivery or pickup.
func (c CheckoutCommand) OrderType() order.Type {
	return c.orderType
}

// PromoCode returns the raw promo code input, empty if none.
func (c CheckoutCommand) PromoCode() string {
	return c.promoCode
}

// TipNaira returns the tip amount.
func (c CheckoutCommand) TipNaira() int {
	return c.tipNaira
}

// Address returns the delivery address, or nil for pickup.
func (c CheckoutCommand) Address() *order.Address {
	if c.address == nil {
		return nil
	}
	a := *c.address
	return &a
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CheckoutCommand) setTipNaira(tipNaira int) error {
	if tipNaira < 0 {
		return ErrTipIsInvalid
	}

	c.tipNaira = tipNaira
	return nil
}
