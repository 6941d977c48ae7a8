package handler

import (
	"log/slog"
	"net/http"

	"appcenar/internal/delivery/http/middleware"
	"appcenar/internal/delivery/http/response"
	"appcenar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the profile endpoints shared by every role.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdatePersonProfileRequest is the request body for a customer or courier
// profile edit.
type UpdatePersonProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	PhotoURL string `json:"photo_url"`
}

// UpdateMerchantProfileRequest is the request body for a merchant storefront
// edit.
type UpdateMerchantProfileRequest struct {
	StoreName string `json:"store_name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	LogoURL   string `json:"logo_url"`
	OpensAt   string `json:"opens_at"`
	ClosesAt  string `json:"closes_at"`
}

// GetProfile returns the caller's account.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	account, err := h.profileUC.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "")
}

// UpdatePersonProfile edits the caller's personal data. Email, username and
// credentials are not editable here.
func (h *ProfileHandler) UpdatePersonProfile(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	var req UpdatePersonProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Perfil inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.profileUC.UpdatePersonProfile(c.Request().Context(), accountID, usecase.UpdatePersonProfileInput{
		Name:     req.Name,
		LastName: req.LastName,
		Phone:    req.Phone,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Perfil actualizado")
}

// UpdateMerchantProfile edits the caller's storefront data.
func (h *ProfileHandler) UpdateMerchantProfile(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	var req UpdateMerchantProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Perfil inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.profileUC.UpdateMerchantProfile(c.Request().Context(), accountID, usecase.UpdateMerchantProfileInput{
		StoreName: req.StoreName,
		Phone:     req.Phone,
		LogoURL:   req.LogoURL,
		OpensAt:   req.OpensAt,
		ClosesAt:  req.ClosesAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Perfil actualizado")
}
