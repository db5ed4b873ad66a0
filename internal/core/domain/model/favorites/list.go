package favorites

import (
	"errors"
	"strings"

	"yumyum/internal/pkg/errs"
	"yumyum/internal/pkg/guard"
)

// ErrListIsNotConstructed is returned when a List instance was not created
// through NewList or RestoreList.
var ErrListIsNotConstructed = errors.New("List must be created via NewList or RestoreList")

// List is the aggregate of favorited menu item ids. Ids are unique and kept
// in most-recently-added-first order.
type List struct {
	ids []string

	guard guard.ConstructorGuard
}

// NewList creates an empty favorites list.
func NewList() *List {
	return &List{
		ids:   make([]string, 0),
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreList rebuilds a list from persistence, dropping blank ids and
// duplicates while keeping the first occurrence order.
func RestoreList(ids []string) *List {
	kept := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		kept = append(kept, id)
	}

	return &List{
		ids:   kept,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the list was created through a constructor.
func (l *List) Validate() error {
	if l == nil {
		return ErrListIsNotConstructed
	}
	return l.guard.Validate(ErrListIsNotConstructed)
}

// IDs returns a copy of the favorited ids, most recently added first.
func (l *List) IDs() []string {
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}

// Has reports whether itemID is currently favorited.
func (l *List) Has(itemID string) bool {
	for _, id := range l.ids {
		if id == itemID {
			return true
		}
	}
	return false
}

// Count returns the number of favorited items.
func (l *List) Count() int {
	return len(l.ids)
}

// Toggle flips membership of itemID. Adding prepends the id so recent
// favorites sort first; removing deletes it wherever it sits. Returns whether
// the item is favorited after the call.
func (l *List) Toggle(itemID string) (bool, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return false, errs.NewValueIsRequiredError("itemID")
	}

	for i, id := range l.ids {
		if id == itemID {
			l.ids = append(l.ids[:i], l.ids[i+1:]...)
			return false, nil
		}
	}

	l.ids = append([]string{itemID}, l.ids...)
	return true, nil
}

// Clear removes every favorite.
func (l *List) Clear() {
	l.ids = l.ids[:0]
}
