// Package orderrepo persists order aggregates as one JSON array document,
// newest order first, and maps between the stored shape and the domain
// aggregate.
package orderrepo

import (
	"time"

	"yumyum/internal/core/domain/model/cart"
	"yumyum/internal/core/domain/model/kernel"
	"yumyum/internal/core/domain/model/order"
)

// orderDTO is the persisted shape of one order.
type orderDTO struct {
	ID        string      `json:"id"`
	Number    string      `json:"number"`
	Type      string      `json:"type"`
	Status    string      `json:"status"`
	PlacedAt  time.Time   `json:"placedAt"`
	Lines     []lineDTO   `json:"lines"`
	Address   *addressDTO `json:"address,omitempty"`
	Totals    totalsDTO   `json:"totals"`
	PromoCode string      `json:"promoCode,omitempty"`
	Events    []eventDTO  `json:"events"`
}

type lineDTO struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type addressDTO struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Area     string `json:"area,omitempty"`
	Note     string `json:"note,omitempty"`
}

type totalsDTO struct {
	SubtotalNaira    int `json:"subtotalNaira"`
	DeliveryFeeNaira int `json:"deliveryFeeNaira"`
	DiscountNaira    int `json:"discountNaira"`
	TipNaira         int `json:"tipNaira"`
	TotalNaira       int `json:"totalNaira"`
}

type eventDTO struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
}

// fromDomain converts an order aggregate to its stored representation.
func fromDomain(aggregate *order.Order) orderDTO {
	dto := orderDTO{
		ID:        aggregate.ID().String(),
		Number:    aggregate.Number().String(),
		Type:      string(aggregate.OrderType()),
		Status:    aggregate.Status().String(),
		PlacedAt:  aggregate.PlacedAt(),
		Lines:     make([]lineDTO, 0, len(aggregate.Lines())),
		Totals: totalsDTO{
			SubtotalNaira:    aggregate.Totals().SubtotalNaira,
			DeliveryFeeNaira: aggregate.Totals().DeliveryFeeNaira,
			DiscountNaira:    aggregate.Totals().DiscountNaira,
			TipNaira:         aggregate.Totals().TipNaira,
			TotalNaira:       aggregate.Totals().TotalNaira,
		},
		PromoCode: aggregate.PromoCode(),
		Events:    make([]eventDTO, 0, len(aggregate.Events())),
	}

	for _, l := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, lineDTO{ItemID: l.ItemID(), Quantity: l.Quantity()})
	}
	if a := aggregate.Address(); a != nil {
		dto.Address = &addressDTO{
			FullName: a.FullName,
			Phone:    a.Phone,
			Line1:    a.Line1,
			Area:     a.Area,
			Note:     a.Note,
		}
	}
	for _, e := range aggregate.Events() {
		dto.Events = append(dto.Events, eventDTO{Type: e.Status.String(), At: e.At})
	}

	return dto
}

// toDomain converts a stored order back to the domain aggregate using the
// permissive RestoreOrder path.
func toDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lines = append(lines, cart.NewLine(l.ItemID, l.Quantity))
	}

	var address *order.Address
	if dto.Address != nil {
		address = &order.Address{
			FullName: dto.Address.FullName,
			Phone:    dto.Address.Phone,
			Line1:    dto.Address.Line1,
			Area:     dto.Address.Area,
			Note:     dto.Address.Note,
		}
	}

	events := make([]order.Event, 0, len(dto.Events))
	for _, e := range dto.Events {
		events = append(events, order.Event{Status: order.Status(e.Type), At: e.At})
	}

	return order.RestoreOrder(
		id,
		order.Number(dto.Number),
		order.Type(dto.Type),
		order.Status(dto.Status),
		dto.PlacedAt,
		lines,
		address,
		order.Totals{
			SubtotalNaira:    dto.Totals.SubtotalNaira,
			DeliveryFeeNaira: dto.Totals.DeliveryFeeNaira,
			DiscountNaira:    dto.Totals.DiscountNaira,
			TipNaira:         dto.Totals.TipNaira,
			TotalNaira:       dto.Totals.TotalNaira,
		},
		dto.PromoCode,
		events,
	)
}
