package commands_test

import (
	"context"

	"yumyum/internal/core/application/usecases/commands"
	"yumyum/internal/core/domain/model/cart"
	"yumyum/internal/core/domain/model/favorites"
	"yumyum/internal/core/domain/model/kernel"
	"yumyum/internal/core/domain/model/menu"
	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/core/domain/model/session"
	"yumyum/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context) (*cart.Cart, error) {
	args := m.Called(ctx)
	return args.Get(0).(*cart.Cart), args.Error(1)
}
func (m *MockCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Get(ctx context.Context) (*menu.Catalog, error) {
	args := m.Called(ctx)
	return args.Get(0).(*menu.Catalog), args.Error(1)
}
func (m *MockCatalogRepository) Save(ctx context.Context, aggregate *menu.Catalog) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockFavoritesRepository struct{ mock.Mock }

func (m *MockFavoritesRepository) Get(ctx context.Context) (*favorites.List, error) {
	args := m.Called(ctx)
	return args.Get(0).(*favorites.List), args.Error(1)
}
func (m *MockFavoritesRepository) Save(ctx context.Context, aggregate *favorites.List) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Get(ctx context.Context) (*session.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(*session.Session), args.Error(1)
}
func (m *MockSessionRepository) Save(ctx context.Context, aggregate *session.Session) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockSessionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// mockTx implements the transaction lifecycle shared by every UoW mock.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCartUoW struct{ mockTx }

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockCatalogUoW struct{ mockTx }

func (m *MockCatalogUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFavoritesUoW struct{ mockTx }

func (m *MockFavoritesUoW) FavoritesRepository() ports.FavoritesRepository {
	args := m.Called()
	return args.Get(0).(ports.FavoritesRepository)
}

type MockFavoritesUoWFactory struct{ mock.Mock }

func (m *MockFavoritesUoWFactory) Create() commands.FavoritesUoW {
	args := m.Called()
	return args.Get(0).(commands.FavoritesUoW)
}

type MockSessionUoW struct{ mockTx }

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}

type MockCheckoutUoW struct{ mockTx }

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockCheckoutUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}
func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}
