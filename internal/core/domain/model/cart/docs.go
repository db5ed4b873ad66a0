// Package cart implements the shopping cart aggregate: the session's selected
// line items, independent of the menu catalog.
//
// Invariants maintained by the aggregate:
//   - at most one line per item id (duplicates merge by summing quantities)
//   - every quantity is an integer in [MinQuantity, MaxQuantity]
//
// The same sanitize pipeline runs for Replace (reordering a past order) and
// for restoring persisted state, so both tolerate arbitrary untrusted input
// and Replace is idempotent.
package cart
