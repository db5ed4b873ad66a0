package cmd

import (
	"yumyum/internal/adapters/out/sqlite"
	"yumyum/internal/core/application/usecases/commands"
	"yumyum/internal/core/application/usecases/queries"
	"yumyum/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory sqlite.GormUnitOfWorkFactory
	calculator services.PricingCalculator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *sqlite.NewGormUnitOfWorkFactory(gormDB),
		calculator: services.NewPricingCalculator(config.BaseDeliveryFeeNaira),
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) favoritesUoWFactory() commands.FavoritesUoWFactory {
	return FuncFavoritesUoWFactory(func() commands.FavoritesUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateSetCartQuantityCommandHandler() commands.SetCartQuantityCommandHandler {
	return commands.NewSetCartQuantityCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateReplaceCartCommandHandler() commands.ReplaceCartCommandHandler {
	return commands.NewReplaceCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.checkoutUoWFactory(), c.calculator)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpsertMenuItemCommandHandler() commands.UpsertMenuItemCommandHandler {
	return commands.NewUpsertMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpsertCategoryCommandHandler() commands.UpsertCategoryCommandHandler {
	return commands.NewUpsertCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() commands.DeleteCategoryCommandHandler {
	return commands.NewDeleteCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateResetCatalogCommandHandler() commands.ResetCatalogCommandHandler {
	return commands.NewResetCatalogCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateToggleFavoriteCommandHandler() commands.ToggleFavoriteCommandHandler {
	return commands.NewToggleFavoriteCommandHandler(c.favoritesUoWFactory())
}

func (c *CompositionRoot) CreateClearFavoritesCommandHandler() commands.ClearFavoritesCommandHandler {
	return commands.NewClearFavoritesCommandHandler(c.favoritesUoWFactory())
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	return commands.NewSignInCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateSignOutCommandHandler() commands.SignOutCommandHandler {
	return commands.NewSignOutCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPriceQuoteQueryHandler() queries.GetPriceQuoteQueryHandler {
	return queries.NewGetPriceQuoteQueryHandler(c.gormDB, c.calculator)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFavoritesQueryHandler() queries.GetFavoritesQueryHandler {
	return queries.NewGetFavoritesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.gormDB)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFavoritesUoWFactory func() commands.FavoritesUoW

func (f FuncFavoritesUoWFactory) Create() commands.FavoritesUoW {
	return f()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
