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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the customer browsing endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// Home lists the business types for the customer landing screen.
func (h *CatalogHandler) Home(c echo.Context) error {
	businessTypes, err := h.catalogUC.ListBusinessTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businessTypes, "")
}

// ListMerchants lists the active merchants of a business type, with the
// caller's favorite flags and an optional name search.
func (h *CatalogHandler) ListMerchants(c echo.Context) error {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	businessTypeID, err := uuid.Parse(c.Param("businessTypeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Tipo de comercio inválido")
	}

	summaries, err := h.catalogUC.ListMerchants(c.Request().Context(),
		customerID, businessTypeID, c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaries, "")
}

// GetMerchantCatalog returns a merchant's storefront grouped by category.
func (h *CatalogHandler) GetMerchantCatalog(c echo.Context) error {
	merchantID, err := uuid.Parse(c.Param("merchantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Comercio inválido")
	}

	catalog, err := h.catalogUC.GetMerchantCatalog(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"merchant":   toAccountView(catalog.Merchant),
		"categories": catalog.Categories,
	}, "")
}
