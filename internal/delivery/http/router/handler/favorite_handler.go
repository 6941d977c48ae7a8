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

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the customer favorite-merchant endpoints.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// ListFavorites returns the customer's favorite merchants.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}

// Toggle adds the merchant to the customer's favorites, or removes it when
// already present.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	merchantID, err := uuid.Parse(c.Param("merchantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Comercio inválido")
	}

	added, err := h.favoriteUC.Toggle(c.Request().Context(), customerID, merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Comercio quitado de favoritos"
	if added {
		message = "Comercio agregado a favoritos"
	}

	return response.Success(c, http.StatusOK, map[string]any{"favorite": added}, message)
}
