// Package order implements the order aggregate and its lifecycle state
// machine.
//
// An order is an immutable snapshot of cart lines and computed pricing taken
// at checkout; after creation only its status (and the derived status history)
// ever changes. The canonical linear flow is
//
//	confirmed -> preparing -> ready -> on_the_way -> delivered
//
// with canceled reachable on demand. The automatic advance operation treats
// delivered and canceled as terminal; the forced status set deliberately does
// not (see the note on Order.ForceStatus).
//
// The status history is idempotent: each distinct status is recorded at most
// once, keeping the first time it was reached.
package order
