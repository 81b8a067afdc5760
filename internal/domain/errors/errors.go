package errors

import (
	"net/http"

	"wellness/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() []string // Human-readable detail lines (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   []string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details ...string) *BaseError {
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
func (e *BaseError) Details() []string {
	return e.details
}

// Is matches any BaseError carrying the same business code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails returns a copy of the error carrying the given detail lines
func (e *BaseError) WithDetails(details ...string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
	)

	// Identity
	ErrEmailInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IN_USE",
		"Email já está em uso",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciais inválidas",
	)

	ErrInvalidGoogleToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_GOOGLE_TOKEN",
		"Token Google inválido",
	)

	ErrGoogleEmailMismatch = NewBaseError(
		http.StatusBadRequest,
		"GOOGLE_EMAIL_MISMATCH",
		"Email do token Google não corresponde",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado",
	)

	ErrNoUpdateData = NewBaseError(
		http.StatusBadRequest,
		"NO_UPDATE_DATA",
		"Nenhum dado válido para atualizar",
	)

	// Session guard
	ErrTokenRequired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REQUIRED",
		"Token de acesso requerido",
	)

	ErrTokenBlacklisted = NewBaseError(
		http.StatusForbidden,
		"TOKEN_BLACKLISTED",
		"Token foi invalidado",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"TOKEN_INVALID",
		"Token inválido",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expirado",
	)

	// Mood log
	ErrInvalidMoodType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MOOD_TYPE",
		"Tipo de humor deve ser: Triste, Ansioso, Neutro, Feliz ou Motivado",
	)

	ErrInvalidMoodLevel = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MOOD_LEVEL",
		"Nível deve estar entre 1 e 5",
	)

	ErrMoodNotFound = NewBaseError(
		http.StatusNotFound,
		"MOOD_NOT_FOUND",
		"Registro de humor não encontrado",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"Acesso negado",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do servidor",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"Rota não encontrada",
	)
)

// DatabaseExecuteError represents a storage failure, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a storage-related error
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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "INTERNAL_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Erro interno do servidor"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() []string {
	if e.details == "" {
		return nil
	}

	return []string{e.details}
}
