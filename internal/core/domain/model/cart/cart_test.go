package cart_test

import (
	"testing"

	"yumyum/internal/core/domain/model/cart"
	"yumyum/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineKeys(lines []cart.Line) []string {
	keys := make([]string, 0, len(lines))
	for _, l := range lines {
		keys = append(keys, l.ItemID())
	}
	return keys
}

func TestClampQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		input    int
		expected int
	}{
		{"should clamp zero to minimum", 0, 1},
		{"should clamp negative to minimum", -5, 1},
		{"should keep value in range", 7, 7},
		{"should keep minimum", 1, 1},
		{"should keep maximum", 20, 20},
		{"should clamp above maximum", 21, 20},
		{"should clamp large value", 1000, 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cart.ClampQuantity(tc.input))
		})
	}
}

func TestSanitizeLines(t *testing.T) {
	t.Run("should drop lines with blank item id", func(t *testing.T) {
		clean := cart.SanitizeLines([]cart.Line{
			cart.NewLine("", 3),
			cart.NewLine("chicken-1", 2),
		})

		assert.Equal(t, []string{"chicken-1"}, lineKeys(clean))
	})

	t.Run("should merge duplicates by summing then clamping", func(t *testing.T) {
		clean := cart.SanitizeLines([]cart.Line{
			cart.NewLine("chicken-1", 12),
			cart.NewLine("side-2", 1),
			cart.NewLine("chicken-1", 15),
		})

		require.Len(t, clean, 2)
		assert.Equal(t, "chicken-1", clean[0].ItemID())
		assert.Equal(t, 20, clean[0].Quantity())
		assert.Equal(t, 1, clean[1].Quantity())
	})

	t.Run("should be idempotent on noisy input", func(t *testing.T) {
		noisy := []cart.Line{
			cart.NewLine("a", -3),
			cart.NewLine("", 5),
			cart.NewLine("b", 50),
			cart.NewLine("a", 2),
		}

		once := cart.SanitizeLines(noisy)
		twice := cart.SanitizeLines(once)

		assert.Equal(t, once, twice)
	})
}

func TestCart_Add(t *testing.T) {
	t.Run("should append new line with clamped quantity", func(t *testing.T) {
		c := cart.NewCart()

		require.NoError(t, c.Add("chicken-1", 0))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity())
	})

	t.Run("should merge into existing line", func(t *testing.T) {
		c := cart.NewCart()

		require.NoError(t, c.Add("chicken-1", 3))
		require.NoError(t, c.Add("chicken-1", 4))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 7, lines[0].Quantity())
	})

	t.Run("should clamp merged quantity at maximum", func(t *testing.T) {
		c := cart.NewCart()

		require.NoError(t, c.Add("chicken-1", 15))
		require.NoError(t, c.Add("chicken-1", 15))

		assert.Equal(t, 20, c.Lines()[0].Quantity())
	})

	t.Run("should reject blank item id", func(t *testing.T) {
		c := cart.NewCart()

		err := c.Add("", 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("should overwrite quantity with clamping", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add("chicken-1", 2))

		require.NoError(t, c.SetQuantity("chicken-1", 99))

		assert.Equal(t, 20, c.Lines()[0].Quantity())
	})

	t.Run("should not remove line when set below one", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add("chicken-1", 2))

		require.NoError(t, c.SetQuantity("chicken-1", 0))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity())
	})

	t.Run("should be no-op for missing line", func(t *testing.T) {
		c := cart.NewCart()

		require.NoError(t, c.SetQuantity("ghost", 5))

		assert.True(t, c.IsEmpty())
	})
}

func TestCart_Remove(t *testing.T) {
	t.Run("should delete existing line", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add("chicken-1", 2))
		require.NoError(t, c.Add("side-2", 1))

		c.Remove("chicken-1")

		assert.Equal(t, []string{"side-2"}, lineKeys(c.Lines()))
	})

	t.Run("should be no-op for missing line", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add("chicken-1", 2))

		c.Remove("ghost")

		assert.Len(t, c.Lines(), 1)
	})
}

func TestCart_Clear(t *testing.T) {
	t.Run("should empty all lines", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add("chicken-1", 2))
		require.NoError(t, c.Add("side-2", 1))

		c.Clear()

		assert.True(t, c.IsEmpty())
		assert.Equal(t, 0, c.ItemsCount())
	})
}

func TestCart_Replace(t *testing.T) {
	t.Run("should sanitize arbitrary input", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add("old", 1))

		c.Replace([]cart.Line{
			cart.NewLine("", 4),
			cart.NewLine("a", 19),
			cart.NewLine("a", 19),
			cart.NewLine("b", -1),
		})

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, 20, lines[0].Quantity())
		assert.Equal(t, 1, lines[1].Quantity())
	})
}

func TestCart_ItemsCount(t *testing.T) {
	t.Run("should sum all quantities", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add("a", 3))
		require.NoError(t, c.Add("b", 5))

		assert.Equal(t, 8, c.ItemsCount())
	})
}

func TestCart_Invariants(t *testing.T) {
	t.Run("should hold for any operation sequence", func(t *testing.T) {
		c := cart.RestoreCart([]cart.Line{
			cart.NewLine("a", 500),
			cart.NewLine("a", 1),
			cart.NewLine("", 2),
		})

		require.NoError(t, c.Add("b", -2))
		require.NoError(t, c.SetQuantity("a", 21))
		c.Remove("missing")
		c.Replace(append(c.Lines(), cart.NewLine("b", 19)))
		require.NoError(t, c.Add("c", 20))

		seen := map[string]bool{}
		for _, l := range c.Lines() {
			assert.False(t, seen[l.ItemID()], "duplicate item id %s", l.ItemID())
			seen[l.ItemID()] = true
			assert.GreaterOrEqual(t, l.Quantity(), cart.MinQuantity)
			assert.LessOrEqual(t, l.Quantity(), cart.MaxQuantity)
		}
	})
}

func TestCart_Validate(t *testing.T) {
	t.Run("should reject zero-value cart", func(t *testing.T) {
		var c cart.Cart

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, cart.ErrCartIsNotConstructed, err)
	})

	t.Run("should accept constructed cart", func(t *testing.T) {
		require.NoError(t, cart.NewCart().Validate())
	})
}
