package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"yumyum/cmd"
	httpadapter "yumyum/internal/adapters/in/http"
	"yumyum/internal/adapters/out/sqlite/documentstore"
	"yumyum/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(sqlitedriver.Open(configs.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error opening database %s: %v", configs.DBPath, err)
	}
	if err = gormDB.AutoMigrate(&documentstore.DocumentDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// The .env file is optional; a plain environment works too.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		DBPath:               envOrDefault("DB_PATH", "yumyum.db"),
		BaseDeliveryFeeNaira: envIntOrDefault("BASE_DELIVERY_FEE_NAIRA", services.DefaultDeliveryFeeNaira),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s=%q: %v", key, raw, err)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.Handlers{
		AddCartItem:     app.CreateAddCartItemCommandHandler(),
		SetCartQuantity: app.CreateSetCartQuantityCommandHandler(),
		RemoveCartItem:  app.CreateRemoveCartItemCommandHandler(),
		ClearCart:       app.CreateClearCartCommandHandler(),
		ReplaceCart:     app.CreateReplaceCartCommandHandler(),
		Checkout:        app.CreateCheckoutCommandHandler(),
		UpdateStatus:    app.CreateUpdateOrderStatusCommandHandler(),
		AdvanceOrder:    app.CreateAdvanceOrderCommandHandler(),
		CancelOrder:     app.CreateCancelOrderCommandHandler(),
		UpsertMenuItem:  app.CreateUpsertMenuItemCommandHandler(),
		UpsertCategory:  app.CreateUpsertCategoryCommandHandler(),
		DeleteMenuItem:  app.CreateDeleteMenuItemCommandHandler(),
		DeleteCategory:  app.CreateDeleteCategoryCommandHandler(),
		ResetCatalog:    app.CreateResetCatalogCommandHandler(),
		ToggleFavorite:  app.CreateToggleFavoriteCommandHandler(),
		ClearFavorites:  app.CreateClearFavoritesCommandHandler(),
		SignIn:          app.CreateSignInCommandHandler(),
		SignOut:         app.CreateSignOutCommandHandler(),

		GetMenu:       app.CreateGetMenuQueryHandler(),
		GetCart:       app.CreateGetCartQueryHandler(),
		GetPriceQuote: app.CreateGetPriceQuoteQueryHandler(),
		GetOrders:     app.CreateGetOrdersQueryHandler(),
		GetOrderByID:  app.CreateGetOrderByIDQueryHandler(),
		GetFavorites:  app.CreateGetFavoritesQueryHandler(),
		GetSession:    app.CreateGetSessionQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
