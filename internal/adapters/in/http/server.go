// Package http exposes the storefront over a JSON REST API. Handlers bind
// and trim raw input, translate it into commands and queries, and map domain
// errors onto HTTP status codes. No business rules live here.
package http

import (
	"errors"
	"net/http"
	"strings"

	"yumyum/internal/core/application/usecases/commands"
	"yumyum/internal/core/application/usecases/queries"
	"yumyum/internal/core/domain/model/cart"
	"yumyum/internal/core/domain/model/kernel"
	"yumyum/internal/core/domain/model/menu"
	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the structured error body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	// Command handlers
	AddCartItem     commands.AddCartItemCommandHandler
	SetCartQuantity commands.SetCartQuantityCommandHandler
	RemoveCartItem  commands.RemoveCartItemCommandHandler
	ClearCart       commands.ClearCartCommandHandler
	ReplaceCart     commands.ReplaceCartCommandHandler
	Checkout        commands.CheckoutCommandHandler
	UpdateStatus    commands.UpdateOrderStatusCommandHandler
	AdvanceOrder    commands.AdvanceOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	UpsertMenuItem  commands.UpsertMenuItemCommandHandler
	UpsertCategory  commands.UpsertCategoryCommandHandler
	DeleteMenuItem  commands.DeleteMenuItemCommandHandler
	DeleteCategory  commands.DeleteCategoryCommandHandler
	ResetCatalog    commands.ResetCatalogCommandHandler
	ToggleFavorite  commands.ToggleFavoriteCommandHandler
	ClearFavorites  commands.ClearFavoritesCommandHandler
	SignIn          commands.SignInCommandHandler
	SignOut         commands.SignOutCommandHandler

	// Query handlers
	GetMenu       queries.GetMenuQueryHandler
	GetCart       queries.GetCartQueryHandler
	GetPriceQuote queries.GetPriceQuoteQueryHandler
	GetOrders     queries.GetOrdersQueryHandler
	GetOrderByID  queries.GetOrderByIDQueryHandler
	GetFavorites  queries.GetFavoritesQueryHandler
	GetSession    queries.GetSessionQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/menu", s.GetMenu)
	api.POST("/admin/menu/items", s.UpsertMenuItem)
	api.DELETE("/admin/menu/items/:id", s.DeleteMenuItem)
	api.POST("/admin/menu/categories", s.UpsertCategory)
	api.DELETE("/admin/menu/categories/:slug", s.DeleteCategory)
	api.POST("/admin/menu/reset", s.ResetMenu)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:id", s.SetCartQuantity)
	api.DELETE("/cart/items/:id", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)
	api.PUT("/cart", s.ReplaceCart)

	api.POST("/checkout/quote", s.GetPriceQuote)
	api.POST("/checkout", s.Checkout)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/favorites", s.GetFavorites)
	api.POST("/favorites/:id/toggle", s.ToggleFavorite)
	api.DELETE("/favorites", s.ClearFavorites)

	api.GET("/session", s.GetSession)
	api.POST("/session", s.SignIn)
	api.DELETE("/session", s.SignOut)
}

// fail maps a domain error onto an HTTP status with a structured body.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrReferentialConflict),
		errors.Is(err, commands.ErrCheckoutNotAllowed):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest answers a malformed or rejected input with 400.
func (s *Server) badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

var errInvalidRequestBody = errors.New("invalid request body")

// addressPayload is the delivery address as submitted at checkout.
type addressPayload struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Area     string `json:"area"`
	Note     string `json:"note"`
}

// toDomain trims every field and returns nil for an all-blank payload, which
// lets the aggregate treat "no address" and "empty address" the same way.
func (p *addressPayload) toDomain() *order.Address {
	if p == nil {
		return nil
	}

	a := order.Address{
		FullName: strings.TrimSpace(p.FullName),
		Phone:    strings.TrimSpace(p.Phone),
		Line1:    strings.TrimSpace(p.Line1),
		Area:     strings.TrimSpace(p.Area),
		Note:     strings.TrimSpace(p.Note),
	}
	if a == (order.Address{}) {
		return nil
	}
	return &a
}

// GetMenu handles GET /api/v1/menu - retrieves the menu, optionally filtered
// by the category query parameter.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery(ctx.QueryParam("category"))

	response, err := s.handlers.GetMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type menuItemPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceNaira   int    `json:"priceNaira"`
	CategorySlug string `json:"categorySlug"`
	Image        string `json:"image"`
	InStock      bool   `json:"inStock"`
	PrepMinutes  int    `json:"prepMinutes"`
	Badge        string `json:"badge"`
	Spicy        bool   `json:"spicy"`
}

// UpsertMenuItem handles POST /api/v1/admin/menu/items - creates or replaces
// a menu item.
func (s *Server) UpsertMenuItem(ctx echo.Context) error {
	var payload menuItemPayload
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, errInvalidRequestBody)
	}

	cmd, err := commands.NewUpsertMenuItemCommand(menu.Item{
		ID:           strings.TrimSpace(payload.ID),
		Name:         strings.TrimSpace(payload.Name),
		Description:  payload.Description,
		PriceNaira:   payload.PriceNaira,
		CategorySlug: strings.TrimSpace(payload.CategorySlug),
		Image:        payload.Image,
		InStock:      payload.InStock,
		PrepMinutes:  payload.PrepMinutes,
		Badge:        menu.Badge(payload.Badge),
		Spicy:        payload.Spicy,
	})
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.handlers.UpsertMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/admin/menu/items/:id - removes a menu
// item.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	cmd, err := commands.NewDeleteMenuItemCommand(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.handlers.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type categoryPayload struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// UpsertCategory handles POST /api/v1/admin/menu/categories - creates or
// renames a category.
func (s *Server) UpsertCategory(ctx echo.Context) error {
	var payload categoryPayload
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, errInvalidRequestBody)
	}

	cmd, err := commands.NewUpsertCategoryCommand(menu.Category{
		Slug: strings.TrimSpace(payload.Slug),
		Name: strings.TrimSpace(payload.Name),
	})
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.handlers.UpsertCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCategory handles DELETE /api/v1/admin/menu/categories/:slug - removes
// an empty category. Deleting a category that still has items answers 409.
func (s *Server) DeleteCategory(ctx echo.Context) error {
	cmd, err := commands.NewDeleteCategoryCommand(ctx.Param("slug"))
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.handlers.DeleteCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResetMenu handles POST /api/v1/admin/menu/reset - restores the seed
// catalog.
func (s *Server) ResetMenu(ctx echo.Context) error {
	cmd := commands.NewResetCatalogCommand()

	if err := s.handlers.ResetCatalog.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/cart - retrieves the cart lines.
func (s *Server) GetCart(ctx echo.Context) error {
	query := queries.NewGetCartQuery()

	response, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type cartLinePayload struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// AddCartItem handles POST /api/v1/cart/items - adds an item to the cart. A
// missing quantity defaults to one.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var payload cartLinePayload
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, errInvalidRequestBody)
	}

	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	cmd, err := commands.NewAddCartItemCommand(payload.ItemID, payload.Quantity)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCartQuantity handles PATCH /api/v1/cart/items/:id - sets the quantity
// of a line, clamped into range. Removing a line takes an explicit DELETE.
func (s *Server) SetCartQuantity(ctx echo.Context) error {
	var payload cartLinePayload
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, errInvalidRequestBody)
	}

	cmd, err := commands.NewSetCartQuantityCommand(ctx.Param("id"), payload.Quantity)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.handlers.SetCartQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:id - removes one line.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	cmd, err := commands.NewRemoveCartItemCommand(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart - empties the cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd := commands.NewClearCartCommand()

	if err := s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type replaceCartPayload struct {
	Lines []cartLinePayload `json:"lines"`
}

// ReplaceCart handles PUT /api/v1/cart - replaces the whole cart content,
// which covers both reordering a past order and restoring a saved cart.
func (s *Server) ReplaceCart(ctx echo.Context) error {
	var payload replaceCartPayload
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, errInvalidRequestBody)
	}

	lines := make([]cart.Line, 0, len(payload.Lines))
	for _, line := range payload.Lines {
		lines = append(lines, cart.NewLine(line.ItemID, line.Quantity))
	}

	cmd := commands.NewReplaceCartCommand(lines)

	if err := s.handlers.ReplaceCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type checkoutPayload struct {
	OrderType string          `json:"orderType"`
	PromoCode string          `json:"promoCode"`
	TipNaira  int             `json:"tipNaira"`
	Address   *addressPayload `json:"address"`
}

// GetPriceQuote handles POST /api/v1/checkout/quote - prices the current cart
// without placing an order.
func (s *Server) GetPriceQuote(ctx echo.Context) error {
	var payload checkoutPayload
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, errInvalidRequestBody)
	}

	query, err := queries.NewGetPriceQuoteQuery(
		order.Type(payload.OrderType),
		payload.PromoCode,
		payload.TipNaira,
		payload.Address.toDomain(),
	)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	response, err := s.handlers.GetPriceQuote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// Checkout handles POST /api/v1/checkout - turns the cart into a placed
// order and answers with the order snapshot.
func (s *Server) Checkout(ctx echo.Context) error {
	var payload checkoutPayload
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, errInvalidRequestBody)
	}

	cmd, err := commands.NewCheckoutCommand(
		kernel.NewUUID(),
		order.Type(payload.OrderType),
		payload.PromoCode,
		payload.TipNaira,
		payload.Address.toDomain(),
	)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	placed, err := s.handlers.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(placed))
}

// GetOrders handles GET /api/v1/orders - retrieves the order history, newest
// first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	response, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	response, err := s.handlers.GetOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type updateStatusPayload struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - sets an order
// to any recognized status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, err)
	}

	var payload updateStatusPayload
	if err = ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, errInvalidRequestBody)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Status(payload.Status))
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.handlers.UpdateStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order one
// step along the canonical flow. Terminal orders are left untouched.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetFavorites handles GET /api/v1/favorites - retrieves the favorites list.
func (s *Server) GetFavorites(ctx echo.Context) error {
	query := queries.NewGetFavoritesQuery()

	response, err := s.handlers.GetFavorites.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type toggleFavoriteResponse struct {
	Favorited bool `json:"favorited"`
}

// ToggleFavorite handles POST /api/v1/favorites/:id/toggle - flips the
// favorite state of an item and reports the new state.
func (s *Server) ToggleFavorite(ctx echo.Context) error {
	cmd, err := commands.NewToggleFavoriteCommand(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, err)
	}

	favorited, err := s.handlers.ToggleFavorite.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toggleFavoriteResponse{Favorited: favorited})
}

// ClearFavorites handles DELETE /api/v1/favorites - empties the favorites
// list.
func (s *Server) ClearFavorites(ctx echo.Context) error {
	cmd := commands.NewClearFavoritesCommand()

	if err := s.handlers.ClearFavorites.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSession handles GET /api/v1/session - reports who is signed in, if
// anyone.
func (s *Server) GetSession(ctx echo.Context) error {
	query := queries.NewGetSessionQuery()

	response, err := s.handlers.GetSession.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type signInPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn handles POST /api/v1/session - signs a customer in.
func (s *Server) SignIn(ctx echo.Context) error {
	var payload signInPayload
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, errInvalidRequestBody)
	}

	cmd, err := commands.NewSignInCommand(payload.Email, payload.Password)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	signedIn, err := s.handlers.SignIn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.GetSessionQueryResponse{
		SignedIn:   true,
		Email:      signedIn.Email(),
		SignedInAt: signedIn.SignedInAt(),
	})
}

// SignOut handles DELETE /api/v1/session - signs the customer out. Signing
// out while signed out is a no-op.
func (s *Server) SignOut(ctx echo.Context) error {
	cmd := commands.NewSignOutCommand()

	if err := s.handlers.SignOut.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// orderResponse shapes a freshly placed order into the same payload the order
// queries answer with.
func orderResponse(o *order.Order) queries.OrderResponse {
	lines := make([]queries.CartLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, queries.CartLineResponse{
			ItemID:   line.ItemID(),
			Quantity: line.Quantity(),
		})
	}

	events := make([]queries.OrderEventResponse, 0, len(o.Events()))
	for _, event := range o.Events() {
		events = append(events, queries.OrderEventResponse{
			Type: event.Status.String(),
			At:   event.At,
		})
	}

	var address *queries.AddressResponse
	if a := o.Address(); a != nil {
		address = &queries.AddressResponse{
			FullName: a.FullName,
			Phone:    a.Phone,
			Line1:    a.Line1,
			Area:     a.Area,
			Note:     a.Note,
		}
	}

	totals := o.Totals()

	return queries.OrderResponse{
		ID:          o.ID().String(),
		Number:      o.Number().String(),
		Type:        string(o.OrderType()),
		Status:      o.Status().String(),
		StatusLabel: o.Status().Label(),
		PlacedAt:    o.PlacedAt(),
		Lines:       lines,
		Address:     address,
		Totals: queries.TotalsResponse{
			SubtotalNaira:    totals.SubtotalNaira,
			DeliveryFeeNaira: totals.DeliveryFeeNaira,
			DiscountNaira:    totals.DiscountNaira,
			TipNaira:         totals.TipNaira,
			TotalNaira:       totals.TotalNaira,
		},
		PromoCode: o.PromoCode(),
		Events:    events,
	}
}
