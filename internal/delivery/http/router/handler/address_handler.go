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

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the customer address book endpoints.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest is the request body to create or update an address.
type AddressRequest struct {
	Label       string `json:"label" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (r AddressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		Label:       r.Label,
		Description: r.Description,
	}
}

// ListAddresses returns the customer's addresses.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// GetAddress returns one of the customer's addresses.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Dirección inválida")
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), customerID, addressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "")
}

// CreateAddress adds an address to the customer's address book.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dirección inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), customerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Dirección creada")
}

// UpdateAddress edits one of the customer's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Dirección inválida")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dirección inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), customerID, addressID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Dirección actualizada")
}

// DeleteAddress removes one of the customer's addresses.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Dirección inválida")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), customerID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dirección eliminada")
}
