package errors

import (
	"net/http"

	"appcenar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in Spanish, matching the
// product locale.
var (
	// Authentication
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciales incorrectas",
		"",
	)

	ErrInactiveAccount = NewBaseError(
		http.StatusForbidden,
		"INACTIVE_ACCOUNT",
		"Su cuenta está inactiva. Revise su correo para activarla.",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Las contraseñas no coinciden",
		"",
	)

	ErrAccountExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_EXISTS",
		"El nombre de usuario o correo ya están registrados",
		"",
	)

	ErrEmailExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_EXISTS",
		"El correo ya está registrado",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"Token inválido o expirado",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Su sesión ha expirado. Inicie sesión nuevamente.",
		"",
	)

	// Authorization
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Debes iniciar sesión",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tienes permisos para acceder a esta página",
		"",
	)

	ErrSelfEdit = NewBaseError(
		http.StatusForbidden,
		"SELF_EDIT",
		"No puede modificar su propio usuario",
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos de entrada inválidos",
		"",
	)

	// Not found
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Usuario o correo no encontrado",
		"",
	)

	ErrMerchantNotFound = NewBaseError(
		http.StatusNotFound,
		"MERCHANT_NOT_FOUND",
		"Comercio no encontrado",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Categoría no encontrada",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Dirección no encontrada",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pedido no encontrado",
		"",
	)

	ErrBusinessTypeNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_TYPE_NOT_FOUND",
		"Tipo de comercio no encontrado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	// Order workflow
	ErrNoCourierAvailable = NewBaseError(
		http.StatusConflict,
		"NO_COURIER_AVAILABLE",
		"No hay delivery disponible en este momento. Intente más tarde.",
		"",
	)

	ErrOrderNotPending = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_PENDING",
		"El pedido ya tiene un delivery asignado",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Debe seleccionar al menos un producto",
		"",
	)

	// General
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error de base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
