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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// MerchantHandlerParams holds dependencies for MerchantHandler, injected by Fx.
type MerchantHandlerParams struct {
	fx.In

	MerchantUC usecase.MerchantUsecase
	Logger     *slog.Logger
}

// MerchantHandler serves the merchant endpoints: incoming orders, courier
// assignment and catalog management.
type MerchantHandler struct {
	merchantUC usecase.MerchantUsecase
	logger     *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler.
func NewMerchantHandler(params MerchantHandlerParams) *MerchantHandler {
	return &MerchantHandler{
		merchantUC: params.MerchantUC,
		logger:     params.Logger,
	}
}

// CategoryRequest is the request body to create or update a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ProductRequest is the request body to create or update a product.
// A null category leaves the product uncategorized.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"image_url"`
	CategoryID  *uuid.UUID      `json:"category_id"`
}

func (r ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		CategoryID:  r.CategoryID,
	}
}

// ListOrders returns the merchant's received orders, most recent first.
func (h *MerchantHandler) ListOrders(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	orders, err := h.merchantUC.ListOrders(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns one of the merchant's orders.
func (h *MerchantHandler) GetOrder(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Pedido inválido")
	}

	order, err := h.merchantUC.GetOrder(c.Request().Context(), merchantID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// AssignCourier picks the longest-idle available courier for a pending order
// and moves it to in progress.
func (h *MerchantHandler) AssignCourier(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Pedido inválido")
	}

	order, err := h.merchantUC.AssignCourier(c.Request().Context(), merchantID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Delivery asignado")
}

// ListCategories returns the merchant's categories with product counts.
func (h *MerchantHandler) ListCategories(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	categories, err := h.merchantUC.ListCategories(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// CreateCategory adds a category to the merchant's catalog.
func (h *MerchantHandler) CreateCategory(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Categoría inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.merchantUC.CreateCategory(c.Request().Context(), merchantID, usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Categoría creada")
}

// UpdateCategory edits one of the merchant's categories.
func (h *MerchantHandler) UpdateCategory(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Categoría inválida")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Categoría inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.merchantUC.UpdateCategory(c.Request().Context(), merchantID, categoryID, usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Categoría actualizada")
}

// DeleteCategory removes a category. Its products stay, uncategorized.
func (h *MerchantHandler) DeleteCategory(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Categoría inválida")
	}

	if err := h.merchantUC.DeleteCategory(c.Request().Context(), merchantID, categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Categoría eliminada")
}

// ListProducts returns the merchant's products.
func (h *MerchantHandler) ListProducts(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	products, err := h.merchantUC.ListProducts(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// CreateProduct adds a product to the merchant's catalog.
func (h *MerchantHandler) CreateProduct(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Producto inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.merchantUC.CreateProduct(c.Request().Context(), merchantID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Producto creado")
}

// UpdateProduct edits one of the merchant's products. Existing order
// snapshots are not touched.
func (h *MerchantHandler) UpdateProduct(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Producto inválido")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Producto inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.merchantUC.UpdateProduct(c.Request().Context(), merchantID, productID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Producto actualizado")
}

// DeleteProduct removes one of the merchant's products.
func (h *MerchantHandler) DeleteProduct(c echo.Context) error {
	merchantID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Producto inválido")
	}

	if err := h.merchantUC.DeleteProduct(c.Request().Context(), merchantID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Producto eliminado")
}
