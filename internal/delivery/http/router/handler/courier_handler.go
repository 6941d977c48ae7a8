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

// CourierHandlerParams holds dependencies for CourierHandler, injected by Fx.
type CourierHandlerParams struct {
	fx.In

	CourierUC usecase.CourierUsecase
	Logger    *slog.Logger
}

// CourierHandler serves the courier endpoints.
type CourierHandler struct {
	courierUC usecase.CourierUsecase
	logger    *slog.Logger
}

// NewCourierHandler is the constructor for CourierHandler.
func NewCourierHandler(params CourierHandlerParams) *CourierHandler {
	return &CourierHandler{
		courierUC: params.CourierUC,
		logger:    params.Logger,
	}
}

// ListOrders returns the orders assigned to the courier, most recent first.
func (h *CourierHandler) ListOrders(c echo.Context) error {
	courierID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	orders, err := h.courierUC.ListOrders(c.Request().Context(), courierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns one of the courier's assigned orders.
func (h *CourierHandler) GetOrder(c echo.Context) error {
	courierID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Pedido inválido")
	}

	order, err := h.courierUC.GetOrder(c.Request().Context(), courierID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// CompleteDelivery marks an in-progress order as delivered and frees the
// courier for new assignments.
func (h *CourierHandler) CompleteDelivery(c echo.Context) error {
	courierID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Pedido inválido")
	}

	order, err := h.courierUC.CompleteDelivery(c.Request().Context(), courierID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Pedido completado")
}
