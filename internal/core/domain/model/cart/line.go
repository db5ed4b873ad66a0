package cart

const (
	// MinQuantity is the smallest quantity a cart line may hold.
	MinQuantity = 1

	// MaxQuantity is the largest quantity a cart line may hold.
	MaxQuantity = 20
)

// Line is a value object pairing an item id with a quantity. It is used both
// in live carts and in frozen order snapshots.
type Line struct {
	itemID   string
	quantity int
}

// NewLine creates a line for the given item. The quantity is clamped into
// [MinQuantity, MaxQuantity]; lines for a blank item id are meaningless and
// callers are expected to filter them (SanitizeLines does).
func NewLine(itemID string, quantity int) Line {
	return Line{
		itemID:   itemID,
		quantity: ClampQuantity(quantity),
	}
}

// ItemID returns the referenced catalog item id.
func (l Line) ItemID() string {
	return l.itemID
}

// Quantity returns the line quantity, always within [MinQuantity, MaxQuantity].
func (l Line) Quantity() int {
	return l.quantity
}

// ClampQuantity coerces an arbitrary quantity into [MinQuantity, MaxQuantity].
// Values below the minimum (including zero and negatives) become MinQuantity,
// matching the rule that decrementing below one is the caller's cue to remove
// the line explicitly.
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}

// SanitizeLines is the shared cleanup pipeline for untrusted line lists:
// entries with a blank item id are dropped, duplicate item ids merge by
// summing quantities, and the result is clamped per line. Order of first
// appearance is preserved. Running it twice yields the same result.
func SanitizeLines(lines []Line) []Line {
	merged := make(map[string]int, len(lines))
	order := make([]string, 0, len(lines))

	for _, l := range lines {
		if l.itemID == "" {
			continue
		}
		if _, seen := merged[l.itemID]; !seen {
			order = append(order, l.itemID)
		}
		merged[l.itemID] += ClampQuantity(l.quantity)
	}

	clean := make([]Line, 0, len(order))
	for _, itemID := range order {
		clean = append(clean, NewLine(itemID, merged[itemID]))
	}
	return clean
}
