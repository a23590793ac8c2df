// Package errors provides custom error types for the financas API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Messages are the user-facing pt-BR strings shown by the mobile clients.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Autenticação necessária.", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Senha incorreta.", StatusCode: http.StatusUnauthorized}
	ErrUserNotFound       = &AppError{Code: "USER_NOT_FOUND", Message: "Este e-mail não está cadastrado.", StatusCode: http.StatusNotFound}
	ErrEmailInUse         = &AppError{Code: "EMAIL_IN_USE", Message: "Este e-mail já está em uso por outra conta.", StatusCode: http.StatusConflict}
)

// Local validation errors. These short-circuit before any backend call.
var (
	ErrMissingFields    = &AppError{Code: "MISSING_FIELDS", Message: "Por favor, preencha todos os campos.", StatusCode: http.StatusBadRequest}
	ErrPasswordMismatch = &AppError{Code: "PASSWORD_MISMATCH", Message: "As senhas não conferem.", StatusCode: http.StatusBadRequest}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Dados inválidos.", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Registro não encontrado.", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Ocorreu um erro. Tente novamente.", StatusCode: http.StatusInternalServerError}
)

// Record errors.
var (
	ErrRecordNotFound = &AppError{Code: "RECORD_NOT_FOUND", Message: "Registro não encontrado.", StatusCode: http.StatusNotFound}
	ErrSaveFailed     = &AppError{Code: "SAVE_FAILED", Message: "Não foi possível salvar as alterações.", StatusCode: http.StatusInternalServerError}
)
