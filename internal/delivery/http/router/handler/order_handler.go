package handler

import (
	"log/slog"
	"net/http"

	"appcenar/internal/delivery/http/middleware"
	"appcenar/internal/delivery/http/response"
	"appcenar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the customer order endpoints.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrderRequest is the request body for pricing or placing an order.
// Repeated product IDs are separate cart lines.
type PlaceOrderRequest struct {
	MerchantID uuid.UUID   `json:"merchant_id" validate:"required"`
	AddressID  uuid.UUID   `json:"address_id"`
	ProductIDs []uuid.UUID `json:"product_ids" validate:"required,min=1"`
}

func (r PlaceOrderRequest) toInput(customerID uuid.UUID) usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		CustomerID: customerID,
		MerchantID: r.MerchantID,
		AddressID:  r.AddressID,
		ProductIDs: r.ProductIDs,
	}
}

// PreviewOrder prices a cart without persisting anything.
func (h *OrderHandler) PreviewOrder(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Pedido inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	quote, err := h.orderUC.PreviewOrder(c.Request().Context(), req.toInput(customerID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// PlaceOrder creates a pending order from the cart.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Pedido inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), req.toInput(customerID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Pedido realizado")
}

// ListOrders returns the customer's orders, most recent first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns one of the customer's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Pedido inválido")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), customerID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}
