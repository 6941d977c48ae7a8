package handler

import (
	"log/slog"
	"net/http"

	"appcenar/internal/delivery/http/middleware"
	"appcenar/internal/delivery/http/response"
	"appcenar/internal/domain/entity"
	"appcenar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the administrator endpoints.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// CreateAdminRequest is the request body to create an administrator.
type CreateAdminRequest struct {
	Name            string `json:"name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	NationalID      string `json:"national_id" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// UpdateAdminRequest is the request body to edit an administrator. A blank
// password keeps the stored credential.
type UpdateAdminRequest struct {
	Name            string `json:"name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	NationalID      string `json:"national_id" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"omitempty,min=8"`
	PasswordConfirm string `json:"password_confirm"`
}

// BusinessTypeRequest is the request body to create or update a business type.
type BusinessTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
}

// UpdateTaxRateRequest is the request body to change the system tax rate.
// The rate is a percentage between 0 and 100.
type UpdateTaxRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// Dashboard returns the administrator landing counters.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// ListAccounts returns the accounts of one role with their per-role figures.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	role := entity.Role(c.Param("role"))

	listings, err := h.adminUC.ListAccounts(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// ToggleActive flips an account's active flag. Administrators cannot toggle
// themselves.
func (h *AdminHandler) ToggleActive(c echo.Context) error {
	adminID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Cuenta inválida")
	}

	account, err := h.adminUC.ToggleActive(c.Request().Context(), adminID, accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Cuenta desactivada"
	if account.Active {
		message = "Cuenta activada"
	}

	return response.Success(c, http.StatusOK, toAccountView(account), message)
}

// CreateAdmin registers a new administrator, born active.
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.adminUC.CreateAdmin(c.Request().Context(), usecase.CreateAdminInput{
		Name:            req.Name,
		LastName:        req.LastName,
		NationalID:      req.NationalID,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountView(account), "Administrador creado")
}

// UpdateAdmin edits another administrator. Self-edit is rejected.
func (h *AdminHandler) UpdateAdmin(c echo.Context) error {
	adminID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	targetID, err := uuid.Parse(c.Param("adminId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Cuenta inválida")
	}

	var req UpdateAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.adminUC.UpdateAdmin(c.Request().Context(), adminID, targetID, usecase.UpdateAdminInput{
		Name:            req.Name,
		LastName:        req.LastName,
		NationalID:      req.NationalID,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Administrador actualizado")
}

// ListBusinessTypes returns every business type with merchant counts.
func (h *AdminHandler) ListBusinessTypes(c echo.Context) error {
	types, err := h.adminUC.ListBusinessTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, types, "")
}

// CreateBusinessType adds a business type.
func (h *AdminHandler) CreateBusinessType(c echo.Context) error {
	var req BusinessTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Tipo de comercio inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	businessType, err := h.adminUC.CreateBusinessType(c.Request().Context(), usecase.BusinessTypeInput{
		Name:        req.Name,
		Description: req.Description,
		IconURL:     req.IconURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, businessType, "Tipo de comercio creado")
}

// UpdateBusinessType edits a business type.
func (h *AdminHandler) UpdateBusinessType(c echo.Context) error {
	id, err := uuid.Parse(c.Param("businessTypeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Tipo de comercio inválido")
	}

	var req BusinessTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Tipo de comercio inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	businessType, err := h.adminUC.UpdateBusinessType(c.Request().Context(), id, usecase.BusinessTypeInput{
		Name:        req.Name,
		Description: req.Description,
		IconURL:     req.IconURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businessType, "Tipo de comercio actualizado")
}

// DeleteBusinessType removes a business type not referenced by any merchant.
func (h *AdminHandler) DeleteBusinessType(c echo.Context) error {
	id, err := uuid.Parse(c.Param("businessTypeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Tipo de comercio inválido")
	}

	if err := h.adminUC.DeleteBusinessType(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tipo de comercio eliminado")
}

// GetSettings returns the system settings.
func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, err := h.adminUC.GetSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// UpdateTaxRate changes the tax rate applied to new orders. Existing orders
// keep their snapshot.
func (h *AdminHandler) UpdateTaxRate(c echo.Context) error {
	var req UpdateTaxRateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Tasa inválida")
	}

	settings, err := h.adminUC.UpdateTaxRate(c.Request().Context(), req.Rate)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Configuración actualizada")
}
