package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/todoscontam/finlab/internal/assessment"
	"github.com/todoscontam/finlab/internal/basics"
	"github.com/todoscontam/finlab/internal/budget"
	"github.com/todoscontam/finlab/internal/catalog"
	"github.com/todoscontam/finlab/internal/currency"
	"github.com/todoscontam/finlab/internal/diversify"
	"github.com/todoscontam/finlab/internal/growth"
	"github.com/todoscontam/finlab/internal/logger"
	"github.com/todoscontam/finlab/internal/store"
)

// Error codes
const (
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeUnreachable = "UNREACHABLE"
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeBadRequest  = "BAD_REQUEST"
)

// AppError is an error with the HTTP status and code it is reported with.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  http.StatusBadRequest,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// fromDomain maps the domain packages' sentinel errors onto API errors.
// Anything unrecognised becomes an internal error.
func fromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var paramErr *growth.ParamError
	if errors.As(err, &paramErr) {
		return NewValidationError(paramErr.Field, paramErr.Reason)
	}

	switch {
	case errors.Is(err, catalog.ErrUnknownQuiz):
		return &AppError{Code: ErrCodeNotFound, Message: err.Error(), Status: http.StatusNotFound}
	case errors.Is(err, store.ErrNotFound):
		return &AppError{Code: ErrCodeNotFound, Message: err.Error(), Status: http.StatusNotFound}
	case errors.Is(err, growth.ErrTargetUnreachable):
		return &AppError{Code: ErrCodeUnreachable, Message: err.Error(), Status: http.StatusUnprocessableEntity}
	case errors.Is(err, growth.ErrInvalidParameter),
		errors.Is(err, growth.ErrDivisionByZero),
		errors.Is(err, budget.ErrInvalidRule),
		errors.Is(err, budget.ErrInvalidAmount),
		errors.Is(err, basics.ErrInvalidAmount),
		errors.Is(err, currency.ErrUnknownCurrency),
		errors.Is(err, diversify.ErrInvalidConfig),
		errors.Is(err, diversify.ErrUnknownChoice),
		errors.Is(err, assessment.ErrInvalidParameter),
		errors.Is(err, assessment.ErrInvalidOption),
		errors.Is(err, assessment.ErrInsufficientPool):
		return &AppError{Code: ErrCodeValidation, Message: err.Error(), Status: http.StatusBadRequest, Err: err}
	}
	return NewInternalError(err)
}

// handleError writes err as a JSON error body.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	appErr := fromDomain(err)

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else {
		log.Warn("client error: %v", appErr)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
