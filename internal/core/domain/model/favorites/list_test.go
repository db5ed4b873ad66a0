package favorites_test

import (
	"testing"

	"yumyum/internal/core/domain/model/favorites"
	"yumyum/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Toggle(t *testing.T) {
	t.Run("should prepend new favorites", func(t *testing.T) {
		list := favorites.NewList()

		on, err := list.Toggle("a")
		require.NoError(t, err)
		assert.True(t, on)

		on, err = list.Toggle("b")
		require.NoError(t, err)
		assert.True(t, on)

		assert.Equal(t, []string{"b", "a"}, list.IDs())
	})

	t.Run("should remove existing favorite", func(t *testing.T) {
		list := favorites.NewList()
		_, _ = list.Toggle("a")
		_, _ = list.Toggle("b")

		on, err := list.Toggle("a")

		require.NoError(t, err)
		assert.False(t, on)
		assert.Equal(t, []string{"b"}, list.IDs())
		assert.False(t, list.Has("a"))
	})

	t.Run("should reject blank id", func(t *testing.T) {
		list := favorites.NewList()

		_, err := list.Toggle("  ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreList(t *testing.T) {
	t.Run("should drop blanks and duplicates", func(t *testing.T) {
		list := favorites.RestoreList([]string{"a", "", "b", "a", "  "})

		assert.Equal(t, []string{"a", "b"}, list.IDs())
		assert.Equal(t, 2, list.Count())
	})
}

func TestList_Clear(t *testing.T) {
	t.Run("should remove every favorite", func(t *testing.T) {
		list := favorites.RestoreList([]string{"a", "b"})

		list.Clear()

		assert.Empty(t, list.IDs())
		assert.False(t, list.Has("a"))
	})
}

func TestList_Validate(t *testing.T) {
	t.Run("should reject zero-value list", func(t *testing.T) {
		var list favorites.List

		require.Error(t, list.Validate())
	})

	t.Run("should accept constructed list", func(t *testing.T) {
		require.NoError(t, favorites.NewList().Validate())
	})
}
