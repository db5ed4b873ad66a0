package order

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"yumyum/internal/core/domain/model/cart"
	"yumyum/internal/core/domain/model/kernel"
	"yumyum/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoLines is returned when checkout is attempted with an
	// empty line snapshot.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order lines")
)

// Type distinguishes delivery orders (which carry an address and a fee) from
// pickup orders.
type Type string

const (
	TypeDelivery Type = "delivery"
	TypePickup   Type = "pickup"
)

// Validate checks the order type against the recognized set.
func (t Type) Validate() error {
	switch t {
	case TypeDelivery, TypePickup:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%q is not a valid order type", string(t)))
	}
}

// Event records the first time an order reached a given status.
type Event struct {
	Status Status
	At     time.Time
}

// Totals holds the computed pricing snapshot in naira. All amounts are
// non-negative integers and Total honors
// max(0, Subtotal + DeliveryFee + Tip - Discount).
type Totals struct {
	SubtotalNaira    int
	DeliveryFeeNaira int
	DiscountNaira    int
	TipNaira         int
	TotalNaira       int
}

// Validate checks non-negativity and the total identity.
func (t Totals) Validate() error {
	for _, field := range []struct {
		name  string
		value int
	}{
		{"subtotalNaira", t.SubtotalNaira},
		{"deliveryFeeNaira", t.DeliveryFeeNaira},
		{"discountNaira", t.DiscountNaira},
		{"tipNaira", t.TipNaira},
		{"totalNaira", t.TotalNaira},
	} {
		if field.value < 0 {
			return errs.NewValueIsInvalidErrorWithCause(field.name,
				fmt.Errorf("%d is negative", field.value))
		}
	}

	expected := t.SubtotalNaira + t.DeliveryFeeNaira + t.TipNaira - t.DiscountNaira
	if expected < 0 {
		expected = 0
	}
	if t.TotalNaira != expected {
		return errs.NewValueIsInvalidErrorWithCause("totalNaira",
			fmt.Errorf("%d does not match computed total %d", t.TotalNaira, expected))
	}
	return nil
}

// Number is the human-facing order label, e.g. "YY-48215".
type Number string

// NewNumber generates a display order number: "YY-" plus five random digits.
// Collisions are not actively prevented; the label is display-only and the
// aggregate identity is the UUID. Acceptable at single-store scale.
func NewNumber() Number {
	return Number(fmt.Sprintf("YY-%05d", 10000+rand.Intn(90000)))
}

func (n Number) String() string {
	return string(n)
}

// Order is the aggregate tracking one placed order. Its line and pricing
// snapshot is immutable after creation; only status and the derived event
// history change, and every event is recorded at most once per status.
type Order struct {
	id        kernel.UUID
	number    Number
	orderType Type
	status    Status
	placedAt  time.Time
	lines     []cart.Line
	address   *Address
	totals    Totals
	promoCode string
	events    []Event

	isConstructed bool
}

// NewOrder creates an order at checkout. It snapshots the given lines and
// totals, sets status Confirmed and records the confirmed event at placedAt.
//
// Validation rules:
//   - id must be constructed, lines must be non-empty
//   - orderType must be valid; delivery requires a valid address, pickup
//     forbids one
//   - totals must be non-negative and internally consistent
func NewOrder(
	id kernel.UUID,
	number Number,
	orderType Type,
	lines []cart.Line,
	address *Address,
	totals Totals,
	promoCode string,
	placedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}

	snapshot := cart.SanitizeLines(lines)
	if len(snapshot) == 0 {
		return nil, ErrOrderHasNoLines
	}

	switch orderType {
	case TypeDelivery:
		if address == nil {
			return nil, errs.NewValueIsRequiredError("delivery address")
		}
		if err := address.Validate(); err != nil {
			return nil, err
		}
	case TypePickup:
		if address != nil {
			return nil, errs.NewValueIsInvalidError("address is only valid for delivery orders")
		}
	}

	if err := totals.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		number:        number,
		orderType:     orderType,
		status:        Confirmed,
		placedAt:      placedAt,
		lines:         snapshot,
		address:       address,
		totals:        totals,
		promoCode:     promoCode,
		events:        []Event{{Status: Confirmed, At: placedAt}},
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order from persistence. It is deliberately more
// permissive than NewOrder: lines are sanitized rather than rejected, an
// unrecognized status coerces to Confirmed, and the event list keeps the
// first entry per status. Restore never invents data, it only discards what
// cannot be trusted.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	orderType Type,
	status Status,
	placedAt time.Time,
	lines []cart.Line,
	address *Address,
	totals Totals,
	promoCode string,
	events []Event,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}

	if status.Validate() != nil {
		status = Confirmed
	}

	kept := make([]Event, 0, len(events))
	seen := make(map[Status]bool, len(events))
	for _, e := range events {
		if e.Status.Validate() != nil || seen[e.Status] {
			continue
		}
		seen[e.Status] = true
		kept = append(kept, e)
	}

	return &Order{
		id:            id,
		number:        number,
		orderType:     orderType,
		status:        status,
		placedAt:      placedAt,
		lines:         cart.SanitizeLines(lines),
		address:       address,
		totals:        totals,
		promoCode:     promoCode,
		events:        kept,
		isConstructed: true,
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order label.
func (o *Order) Number() Number {
	return o.number
}

// OrderType returns delivery or pickup.
func (o *Order) OrderType() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Lines returns a copy of the immutable line snapshot.
func (o *Order) Lines() []cart.Line {
	out := make([]cart.Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// Address returns the delivery address, or nil for pickup orders.
func (o *Order) Address() *Address {
	if o.address == nil {
		return nil
	}
	a := *o.address
	return &a
}

// Totals returns the pricing snapshot.
func (o *Order) Totals() Totals {
	return o.totals
}

// PromoCode returns the applied promo code, empty if none.
func (o *Order) PromoCode() string {
	return o.promoCode
}

// Events returns a copy of the status history in append order.
func (o *Order) Events() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

// ForceStatus sets the status to the given value with no transition-validity
// check: any status is reachable from any other, including out of delivered
// and canceled. That permissiveness is intentional and preserved from the
// product's current rules; do not add a guard here without a product
// decision. The event history stays idempotent.
func (o *Order) ForceStatus(status Status, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.recordEvent(status, at)
	return nil
}

// Advance moves the order one step along the canonical flow, clamping at
// Delivered. When the current status is Delivered or Canceled this is a
// no-op. Returns the resulting status.
func (o *Order) Advance(at time.Time) Status {
	if o.status.IsTerminal() {
		return o.status
	}

	o.status = o.status.Next()
	o.recordEvent(o.status, at)
	return o.status
}

// Cancel force-sets the status to Canceled. Like ForceStatus it applies from
// any current status, even Delivered.
func (o *Order) Cancel(at time.Time) {
	o.status = Canceled
	o.recordEvent(Canceled, at)
}

// recordEvent appends an event for status unless one already exists. The
// history keeps the first time each status happened.
func (o *Order) recordEvent(status Status, at time.Time) {
	for _, e := range o.events {
		if e.Status == status {
			return
		}
	}
	o.events = append(o.events, Event{Status: status, At: at})
}
