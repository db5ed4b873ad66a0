package order

import (
	"fmt"

	"yumyum/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is a string enum so
// the persisted JSON carries the canonical wire names directly.
type Status string

const (
	// Confirmed is the initial status of every new order.
	Confirmed Status = "confirmed"

	// Preparing means the kitchen has started on the order.
	Preparing Status = "preparing"

	// Ready means the order is packed and waiting for handover.
	Ready Status = "ready"

	// OnTheWay means a delivery order has left the store.
	OnTheWay Status = "on_the_way"

	// Delivered is the final status of the canonical flow.
	Delivered Status = "delivered"

	// Canceled is reachable on demand from any status.
	Canceled Status = "canceled"
)

// flow is the canonical linear progression used by Next.
var flow = []Status{Confirmed, Preparing, Ready, OnTheWay, Delivered}

// Validate checks the status against the recognized set.
func (s Status) Validate() error {
	switch s {
	case Confirmed, Preparing, Ready, OnTheWay, Delivered, Canceled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the wire name of the status.
func (s Status) String() string {
	return string(s)
}

// Label returns the human-readable display name.
func (s Status) Label() string {
	switch s {
	case Confirmed:
		return "Confirmed"
	case Preparing:
		return "Preparing"
	case Ready:
		return "Ready"
	case OnTheWay:
		return "On the way"
	case Delivered:
		return "Delivered"
	case Canceled:
		return "Canceled"
	default:
		return string(s)
	}
}

// IsTerminal reports whether the automatic advance stops at this status.
// Only advance respects terminality; forced sets do not.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// Next returns the status one step further along the canonical flow, clamped
// at Delivered. Terminal statuses return themselves. A status outside the
// flow restarts at Confirmed, which also covers values rescued from old
// persisted data.
func (s Status) Next() Status {
	if s.IsTerminal() {
		return s
	}
	for i, step := range flow {
		if step == s {
			if i+1 < len(flow) {
				return flow[i+1]
			}
			return step
		}
	}
	return Confirmed
}
