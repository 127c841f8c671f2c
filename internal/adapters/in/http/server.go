// Package http exposes the shop's command and query use cases over a REST API.
// Handlers translate HTTP requests into commands and queries, and map domain
// error kinds onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/orderbook"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createItemHandler            commands.CreateItemCommandHandler
	deleteItemHandler            commands.DeleteItemCommandHandler
	renameItemHandler            commands.RenameItemCommandHandler
	changeItemDescriptionHandler commands.ChangeItemDescriptionCommandHandler
	changeItemPriceHandler       commands.ChangeItemPriceCommandHandler
	changeItemStockHandler       commands.ChangeItemStockCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	deleteOrderHandler           commands.DeleteOrderCommandHandler
	addItemToCartHandler         commands.AddItemToCartCommandHandler
	removeItemFromCartHandler    commands.RemoveItemFromCartCommandHandler
	setCartQuantityHandler       commands.SetCartQuantityCommandHandler
	changeOrderStatusHandler     commands.ChangeOrderStatusCommandHandler
	assignDeliverySlotHandler    commands.AssignDeliverySlotCommandHandler

	// Query handlers
	getItemsHandler             queries.GetItemsQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	CreateItem            commands.CreateItemCommandHandler
	DeleteItem            commands.DeleteItemCommandHandler
	RenameItem            commands.RenameItemCommandHandler
	ChangeItemDescription commands.ChangeItemDescriptionCommandHandler
	ChangeItemPrice       commands.ChangeItemPriceCommandHandler
	ChangeItemStock       commands.ChangeItemStockCommandHandler
	CreateOrder           commands.CreateOrderCommandHandler
	DeleteOrder           commands.DeleteOrderCommandHandler
	AddItemToCart         commands.AddItemToCartCommandHandler
	RemoveItemFromCart    commands.RemoveItemFromCartCommandHandler
	SetCartQuantity       commands.SetCartQuantityCommandHandler
	ChangeOrderStatus     commands.ChangeOrderStatusCommandHandler
	AssignDeliverySlot    commands.AssignDeliverySlotCommandHandler
	GetItems              queries.GetItemsQueryHandler
	GetUncompletedOrders  queries.GetUncompletedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createItemHandler:            handlers.CreateItem,
		deleteItemHandler:            handlers.DeleteItem,
		renameItemHandler:            handlers.RenameItem,
		changeItemDescriptionHandler: handlers.ChangeItemDescription,
		changeItemPriceHandler:       handlers.ChangeItemPrice,
		changeItemStockHandler:       handlers.ChangeItemStock,
		createOrderHandler:           handlers.CreateOrder,
		deleteOrderHandler:           handlers.DeleteOrder,
		addItemToCartHandler:         handlers.AddItemToCart,
		removeItemFromCartHandler:    handlers.RemoveItemFromCart,
		setCartQuantityHandler:       handlers.SetCartQuantity,
		changeOrderStatusHandler:     handlers.ChangeOrderStatus,
		assignDeliverySlotHandler:    handlers.AssignDeliverySlot,
		getItemsHandler:              handlers.GetItems,
		getUncompletedOrdersHandler:  handlers.GetUncompletedOrders,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/items", s.GetItems)
	api.POST("/items", s.CreateItem)
	api.DELETE("/items/:itemID", s.DeleteItem)
	api.PUT("/items/:itemID/name", s.RenameItem)
	api.PUT("/items/:itemID/description", s.ChangeItemDescription)
	api.PUT("/items/:itemID/price", s.ChangeItemPrice)
	api.PUT("/items/:itemID/stock", s.ChangeItemStock)

	api.GET("/orders/active", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.DELETE("/orders/:orderID", s.DeleteOrder)
	api.PUT("/orders/:orderID/status", s.ChangeOrderStatus)
	api.PUT("/orders/:orderID/delivery-slot", s.AssignDeliverySlot)
	api.POST("/orders/:orderID/items/:itemID", s.AddItemToCart)
	api.PUT("/orders/:orderID/items/:itemID", s.SetCartQuantity)
	api.DELETE("/orders/:orderID/items/:itemID", s.RemoveItemFromCart)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemResponse is the JSON representation of one catalog item.
type ItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Description *string `json:"description,omitempty"`
	Stock       int     `json:"stock"`
}

// OrderResponse is the JSON representation of one open order.
type OrderResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// IDResponse carries the server-generated id of a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// GetItems handles GET /api/v1/items - retrieves the catalog.
func (s *Server) GetItems(ctx echo.Context) error {
	query := queries.NewGetItemsQuery()

	items, err := s.getItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := lo.Map(items, func(item queries.GetItemsQueryResponse, _ int) ItemResponse {
		return ItemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Price:       item.Price.String(),
			Description: item.Description,
			Stock:       item.Stock,
		}
	})

	return ctx.JSON(http.StatusOK, response)
}

// CreateItem handles POST /api/v1/items - adds a new catalog item.
func (s *Server) CreateItem(ctx echo.Context) error {
	var body struct {
		Name        string          `json:"name"`
		Price       decimal.Decimal `json:"price"`
		Description *string         `json:"description"`
		Stock       int             `json:"stock"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, body.Name, body.Price, body.Description, body.Stock)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: itemID.String()})
}

// DeleteItem handles DELETE /api/v1/items/:itemID - removes an item and
// strips it from every cart.
func (s *Server) DeleteItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewDeleteItemCommand(itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RenameItem handles PUT /api/v1/items/:itemID/name.
func (s *Server) RenameItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var body struct {
		NewName string `json:"new_name"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRenameItemCommand(itemID, body.NewName)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.renameItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeItemDescription handles PUT /api/v1/items/:itemID/description.
// A null or absent new_description clears the item's description.
func (s *Server) ChangeItemDescription(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var body struct {
		NewDescription *string `json:"new_description"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeItemDescriptionCommand(itemID, body.NewDescription)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changeItemDescriptionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeItemPrice handles PUT /api/v1/items/:itemID/price.
func (s *Server) ChangeItemPrice(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var body struct {
		NewPrice decimal.Decimal `json:"new_price"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeItemPriceCommand(itemID, body.NewPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changeItemPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeItemStock handles PUT /api/v1/items/:itemID/stock.
func (s *Server) ChangeItemStock(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var body struct {
		NewStock int `json:"new_stock"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeItemStockCommand(itemID, body.NewStock)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changeItemStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders/active - retrieves all open orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := lo.Map(orders, func(order queries.GetUncompletedOrdersQueryResponse, _ int) OrderResponse {
		return OrderResponse{
			ID:     order.ID.String(),
			UserID: order.UserID.String(),
			Status: order.Status,
		}
	})

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body struct {
		UserID string         `json:"user_id"`
		Cart   map[string]int `json:"cart"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	cart := make(map[kernel.UUID]int, len(body.Cart))
	for rawItemID, quantity := range body.Cart {
		itemID, itemErr := kernel.UUIDFromString(rawItemID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid item id in cart")
		}
		cart[itemID] = quantity
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, userID, cart)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// DeleteOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PUT /api/v1/orders/:orderID/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body struct {
		NewStatus string `json:"new_status"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := orderbook.ToStatus(body.NewStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDeliverySlot handles PUT /api/v1/orders/:orderID/delivery-slot.
func (s *Server) AssignDeliverySlot(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	slot, err := kernel.NewTimeSlot(body.Start, body.End)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDeliverySlotCommand(orderID, slot)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignDeliverySlotHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddItemToCart handles POST /api/v1/orders/:orderID/items/:itemID.
// Each call raises the item's quantity by one.
func (s *Server) AddItemToCart(ctx echo.Context) error {
	orderID, itemID, err := cartPathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAddItemToCartCommand(orderID, itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addItemToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCartQuantity handles PUT /api/v1/orders/:orderID/items/:itemID.
// A quantity of zero removes the cart line.
func (s *Server) SetCartQuantity(ctx echo.Context) error {
	orderID, itemID, err := cartPathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCartQuantityCommand(orderID, itemID, body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setCartQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItemFromCart handles DELETE /api/v1/orders/:orderID/items/:itemID.
func (s *Server) RemoveItemFromCart(ctx echo.Context) error {
	orderID, itemID, err := cartPathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveItemFromCartCommand(orderID, itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeItemFromCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func cartPathIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("Invalid order id")
	}

	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("Invalid item id")
	}

	return orderID, itemID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain error kinds onto HTTP status codes: missing objects
// become 404, duplicates and rejected transitions 409, value errors 422.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, orderbook.ErrCartIsEmpty):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
