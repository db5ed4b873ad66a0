package cartrepo_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"yumyum/internal/adapters/out/sqlite/cartrepo"
	"yumyum/internal/adapters/out/sqlite/documentstore"
	"yumyum/internal/core/domain/model/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type trackerStub struct{}

func (trackerStub) TrackAggregate(string, any) {}

func newRepository(t *testing.T) (*cartrepo.GormCartRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlitedriver.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&documentstore.DocumentDTO{}))
	return cartrepo.NewGormCartRepository(db, trackerStub{}), db
}

func TestGormCartRepository_DocumentShape(t *testing.T) {
	ctx := context.Background()

	t.Run("should store the cart as a bare array of lines", func(t *testing.T) {
		repo, db := newRepository(t)

		c := cart.NewCart()
		require.NoError(t, c.Add("suya", 2))
		require.NoError(t, repo.Save(ctx, c))

		body, err := documentstore.Load(ctx, db, documentstore.CartKey)
		require.NoError(t, err)

		var stored []struct {
			ItemID   string `json:"itemId"`
			Quantity int    `json:"quantity"`
		}
		require.NoError(t, json.Unmarshal(body, &stored))
		require.Len(t, stored, 1)
		assert.Equal(t, "suya", stored[0].ItemID)
		assert.Equal(t, 2, stored[0].Quantity)
	})

	t.Run("should read a bare array document back into the aggregate", func(t *testing.T) {
		repo, db := newRepository(t)

		body := []byte(`[{"itemId": "zobo", "quantity": 3}]`)
		require.NoError(t, documentstore.Save(ctx, db, documentstore.CartKey, body))

		got, err := repo.Get(ctx)
		require.NoError(t, err)
		require.Len(t, got.Lines(), 1)
		assert.Equal(t, "zobo", got.Lines()[0].ItemID())
		assert.Equal(t, 3, got.ItemsCount())
	})
}
