package middleware

import (
	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GetAccountID returns the authenticated account id set by Authenticate.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyAccountID).(uuid.UUID)

	return id, ok
}

// GetRole returns the authenticated account role set by Authenticate.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(ContextKeyRole).(entity.Role)

	return role, ok
}
