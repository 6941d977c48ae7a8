package handler

import (
	"log/slog"
	"net/http"

	"appcenar/internal/delivery/http/response"
	"appcenar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterPersonRequest is the request body for customer and courier signup.
type RegisterPersonRequest struct {
	Name            string `json:"name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required"`
	PhotoURL        string `json:"photo_url"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

func (r RegisterPersonRequest) toInput() usecase.RegisterPersonInput {
	return usecase.RegisterPersonInput{
		Name:            r.Name,
		LastName:        r.LastName,
		Phone:           r.Phone,
		Email:           r.Email,
		Username:        r.Username,
		PhotoURL:        r.PhotoURL,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}

// RegisterMerchantRequest is the request body for merchant signup.
type RegisterMerchantRequest struct {
	StoreName       string    `json:"store_name" validate:"required"`
	Phone           string    `json:"phone" validate:"required"`
	Email           string    `json:"email" validate:"required,email"`
	LogoURL         string    `json:"logo_url"`
	OpensAt         string    `json:"opens_at" validate:"required"`
	ClosesAt        string    `json:"closes_at" validate:"required"`
	BusinessTypeID  uuid.UUID `json:"business_type_id" validate:"required"`
	Password        string    `json:"password" validate:"required,min=8"`
	PasswordConfirm string    `json:"password_confirm" validate:"required"`
}

// LoginRequest is the request body for login by username or email.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the refresh token for rotation and logout.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ForgotPasswordRequest asks for a password-reset mail.
type ForgotPasswordRequest struct {
	Login string `json:"login" validate:"required"`
}

// ResetPasswordRequest completes a password reset.
type ResetPasswordRequest struct {
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// RegisterCustomer handles customer signup.
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req RegisterPersonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de registro inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.RegisterCustomer(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountView(output.Account),
		"Cuenta creada. Revise su correo para activarla.")
}

// RegisterCourier handles courier signup.
func (h *AuthHandler) RegisterCourier(c echo.Context) error {
	var req RegisterPersonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de registro inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.RegisterCourier(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountView(output.Account),
		"Cuenta creada. Revise su correo para activarla.")
}

// RegisterMerchant handles merchant signup.
func (h *AuthHandler) RegisterMerchant(c echo.Context) error {
	var req RegisterMerchantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de registro inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.RegisterMerchant(c.Request().Context(), usecase.RegisterMerchantInput{
		StoreName:       req.StoreName,
		Phone:           req.Phone,
		Email:           req.Email,
		LogoURL:         req.LogoURL,
		OpensAt:         req.OpensAt,
		ClosesAt:        req.ClosesAt,
		BusinessTypeID:  req.BusinessTypeID,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountView(output.Account),
		"Cuenta creada. Revise su correo para activarla.")
}

// Login handles login by username or email.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de acceso inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"account":       toAccountView(output.Account),
	}, "Sesión iniciada")
}

// Activate consumes the mailed activation token.
func (h *AuthHandler) Activate(c echo.Context) error {
	if err := h.authUC.Activate(c.Request().Context(), c.Param("token")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cuenta activada. Ya puede iniciar sesión.")
}

// ForgotPassword mails a single-use reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Login); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Correo de restablecimiento enviado")
}

// ResetPassword consumes the mailed reset token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.authUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:           c.Param("token"),
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contraseña actualizada. Inicie sesión nuevamente.")
}

// Refresh rotates the refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
	}, "Sesión renovada")
}

// Logout deletes the persisted session.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}

	if err := h.authUC.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sesión cerrada")
}
