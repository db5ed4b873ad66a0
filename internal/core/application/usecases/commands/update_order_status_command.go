package commands

import (
	"errors"

	"yumyum/internal/core/domain/model/kernel"
	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to force an order to a given
// status. Any recognized status is accepted from any current status; the
// status history stays idempotent.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to set an order's status.
// Validates the order id and that the status is recognized.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.status = status

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status to set.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
