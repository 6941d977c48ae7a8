// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"appcenar/internal/delivery/http/middleware"
	"appcenar/internal/delivery/http/router/handler"
	"appcenar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CatalogHandler  *handler.CatalogHandler
	OrderHandler    *handler.OrderHandler
	AddressHandler  *handler.AddressHandler
	FavoriteHandler *handler.FavoriteHandler
	ProfileHandler  *handler.ProfileHandler
	MerchantHandler *handler.MerchantHandler
	CourierHandler  *handler.CourierHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
	addressHandler  *handler.AddressHandler
	favoriteHandler *handler.FavoriteHandler
	profileHandler  *handler.ProfileHandler
	merchantHandler *handler.MerchantHandler
	courierHandler  *handler.CourierHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		catalogHandler:  params.CatalogHandler,
		orderHandler:    params.OrderHandler,
		addressHandler:  params.AddressHandler,
		favoriteHandler: params.FavoriteHandler,
		profileHandler:  params.ProfileHandler,
		merchantHandler: params.MerchantHandler,
		courierHandler:  params.CourierHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Landing: logged-in sessions go straight to their role home.
	e.GET("/", handler.Root, r.authMiddleware.AuthenticateOptional)

	// An active session on the guest-only auth pages bounces to its role home.
	guestOnly := []echo.MiddlewareFunc{
		r.authMiddleware.AuthenticateOptional,
		r.authMiddleware.RedirectAuthenticated,
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/cliente", r.authHandler.RegisterCustomer, guestOnly...)
		authGroup.POST("/register/delivery", r.authHandler.RegisterCourier, guestOnly...)
		authGroup.POST("/register/comercio", r.authHandler.RegisterMerchant, guestOnly...)
		authGroup.POST("/login", r.authHandler.Login, guestOnly...)
		authGroup.GET("/activate/:token", r.authHandler.Activate)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword, guestOnly...)
		authGroup.POST("/reset-password/:token", r.authHandler.ResetPassword, guestOnly...)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Customer routes
	customerGroup := e.Group("/cliente")
	customerGroup.Use(r.authMiddleware.Authenticate)
	customerGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		customerGroup.GET("/home", r.catalogHandler.Home)
		customerGroup.GET("/comercios/:businessTypeId", r.catalogHandler.ListMerchants)
		customerGroup.GET("/catalogo/:merchantId", r.catalogHandler.GetMerchantCatalog)

		customerGroup.POST("/pedidos/preview", r.orderHandler.PreviewOrder)
		customerGroup.POST("/pedidos", r.orderHandler.PlaceOrder)
		customerGroup.GET("/pedidos", r.orderHandler.ListOrders)
		customerGroup.GET("/pedidos/:orderId", r.orderHandler.GetOrder)

		customerGroup.GET("/direcciones", r.addressHandler.ListAddresses)
		customerGroup.POST("/direcciones", r.addressHandler.CreateAddress)
		customerGroup.GET("/direcciones/:addressId", r.addressHandler.GetAddress)
		customerGroup.PUT("/direcciones/:addressId", r.addressHandler.UpdateAddress)
		customerGroup.DELETE("/direcciones/:addressId", r.addressHandler.DeleteAddress)

		customerGroup.GET("/favoritos", r.favoriteHandler.ListFavorites)
		customerGroup.POST("/favoritos/:merchantId", r.favoriteHandler.Toggle)

		customerGroup.GET("/perfil", r.profileHandler.GetProfile)
		customerGroup.PUT("/perfil", r.profileHandler.UpdatePersonProfile)
	}

	// Merchant routes
	merchantGroup := e.Group("/comercio")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	merchantGroup.Use(r.authMiddleware.RequireRole(entity.RoleMerchant))
	{
		merchantGroup.GET("/home", r.merchantHandler.ListOrders)
		merchantGroup.GET("/pedidos", r.merchantHandler.ListOrders)
		merchantGroup.GET("/pedidos/:orderId", r.merchantHandler.GetOrder)
		merchantGroup.POST("/pedidos/:orderId/asignar", r.merchantHandler.AssignCourier)

		merchantGroup.GET("/categorias", r.merchantHandler.ListCategories)
		merchantGroup.POST("/categorias", r.merchantHandler.CreateCategory)
		merchantGroup.PUT("/categorias/:categoryId", r.merchantHandler.UpdateCategory)
		merchantGroup.DELETE("/categorias/:categoryId", r.merchantHandler.DeleteCategory)

		merchantGroup.GET("/productos", r.merchantHandler.ListProducts)
		merchantGroup.POST("/productos", r.merchantHandler.CreateProduct)
		merchantGroup.PUT("/productos/:productId", r.merchantHandler.UpdateProduct)
		merchantGroup.DELETE("/productos/:productId", r.merchantHandler.DeleteProduct)

		merchantGroup.GET("/perfil", r.profileHandler.GetProfile)
		merchantGroup.PUT("/perfil", r.profileHandler.UpdateMerchantProfile)
	}

	// Courier routes
	courierGroup := e.Group("/delivery")
	courierGroup.Use(r.authMiddleware.Authenticate)
	courierGroup.Use(r.authMiddleware.RequireRole(entity.RoleCourier))
	{
		courierGroup.GET("/home", r.courierHandler.ListOrders)
		courierGroup.GET("/pedidos", r.courierHandler.ListOrders)
		courierGroup.GET("/pedidos/:orderId", r.courierHandler.GetOrder)
		courierGroup.POST("/pedidos/:orderId/completar", r.courierHandler.CompleteDelivery)

		courierGroup.GET("/perfil", r.profileHandler.GetProfile)
		courierGroup.PUT("/perfil", r.profileHandler.UpdatePersonProfile)
	}

	// Administrator routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)

		adminGroup.GET("/cuentas/:role", r.adminHandler.ListAccounts)
		adminGroup.POST("/cuentas/:accountId/toggle", r.adminHandler.ToggleActive)

		adminGroup.POST("/administradores", r.adminHandler.CreateAdmin)
		adminGroup.PUT("/administradores/:adminId", r.adminHandler.UpdateAdmin)

		adminGroup.GET("/tipos-comercio", r.adminHandler.ListBusinessTypes)
		adminGroup.POST("/tipos-comercio", r.adminHandler.CreateBusinessType)
		adminGroup.PUT("/tipos-comercio/:businessTypeId", r.adminHandler.UpdateBusinessType)
		adminGroup.DELETE("/tipos-comercio/:businessTypeId", r.adminHandler.DeleteBusinessType)

		adminGroup.GET("/configuracion", r.adminHandler.GetSettings)
		adminGroup.PUT("/configuracion/itbis", r.adminHandler.UpdateTaxRate)
	}
}
