package middleware

import (
	"net/http"
	"slices"
	"strings"

	"appcenar/internal/delivery/http/response"
	"appcenar/internal/domain/entity"
	"appcenar/internal/domain/repository"
	"appcenar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for handlers to read.
const (
	ContextKeyAccountID = "accountID"
	ContextKeyRole      = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	accountRepo repository.AccountRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accountRepo repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accountRepo: accountRepo}
}

// Authenticate validates the bearer access token and re-checks the account
// against the store, so a deactivated account loses access immediately even
// with a still-valid token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Debes iniciar sesión")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return unauthorized(c, "Formato de token inválido, se espera Bearer")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return unauthorized(c, "Token inválido o expirado")
		}

		account, err := m.accountRepo.FindByID(c.Request().Context(), claims.AccountID)
		if err != nil {
			return unauthorized(c, "Token inválido o expirado")
		}
		if !account.Active {
			return forbidden(c, "Su cuenta está inactiva. Revise su correo para activarla.")
		}

		c.Set(ContextKeyAccountID, account.ID)
		c.Set(ContextKeyRole, account.Role)

		return next(c)
	}
}

// RequireRole checks that the authenticated account carries one of the
// given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRoles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok || !slices.Contains(requiredRoles, role) {
				return forbidden(c, "No tiene permisos para acceder a esta sección")
			}

			return next(c)
		}
	}
}

// AuthenticateOptional sets the account context when a valid bearer token is
// present and lets the request through either way. The root redirect and the
// auth-pages gate use it.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return next(c)
		}

		account, err := m.accountRepo.FindByID(c.Request().Context(), claims.AccountID)
		if err != nil || !account.Active {
			return next(c)
		}

		c.Set(ContextKeyAccountID, account.ID)
		c.Set(ContextKeyRole, account.Role)

		return next(c)
	}
}

// RedirectAuthenticated sends an already logged-in caller from the auth
// pages to its role home. It must be used AFTER AuthenticateOptional.
func (m *AuthMiddleware) RedirectAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if role, ok := c.Get(ContextKeyRole).(entity.Role); ok {
			return c.Redirect(http.StatusFound, role.HomePath())
		}

		return next(c)
	}
}

func unauthorized(c echo.Context, message string) error {
	return response.Unauthorized(c, "INVALID_TOKEN", message)
}

func forbidden(c echo.Context, message string) error {
	return response.Forbidden(c, "FORBIDDEN", message)
}
