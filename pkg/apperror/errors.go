package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error beyond its HTTP status code,
// so callers can tell a missing primary entity apart from a missing
// referenced entity that maps to the same status.
type Kind int

const (
	KindInternal Kind = iota
	KindDoesNotExist
	KindParameterDoesNotExist
	KindExists
	KindReceiptClosed
	KindValidation
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Kind    Kind   `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    code,
		Message: message,
	}
}

// NewDoesNotExistError reports that the primary entity of an operation is absent
func NewDoesNotExistError(resource string, id any) *AppError {
	return &AppError{
		Kind:    KindDoesNotExist,
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s with id<%v> does not exist.", resource, id),
	}
}

// NewParameterDoesNotExistError reports that a referenced secondary entity is absent,
// e.g. the product on a receipt-add or the unit on a product-create
func NewParameterDoesNotExistError(resource string, id any) *AppError {
	return &AppError{
		Kind:    KindParameterDoesNotExist,
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s with id<%v> does not exist.", resource, id),
	}
}

// NewExistsError reports a uniqueness violation on create
func NewExistsError(resource, field string, value any) *AppError {
	return &AppError{
		Kind:    KindExists,
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("%s with %s<%v> already exists.", resource, field, value),
	}
}

// NewReceiptClosedError reports an attempt to mutate or delete a closed receipt
func NewReceiptClosedError(id any) *AppError {
	return &AppError{
		Kind:    KindReceiptClosed,
		Code:    http.StatusForbidden,
		Message: fmt.Sprintf("Receipt with id<%v> is closed.", id),
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsDoesNotExist reports whether err is a does-not-exist error
func IsDoesNotExist(err error) bool {
	return IsKind(err, KindDoesNotExist)
}

// IsParameterDoesNotExist reports whether err is a parameter-does-not-exist error
func IsParameterDoesNotExist(err error) bool {
	return IsKind(err, KindParameterDoesNotExist)
}

// IsExists reports whether err is a uniqueness conflict
func IsExists(err error) bool {
	return IsKind(err, KindExists)
}

// IsReceiptClosed reports whether err is a closed-receipt rejection
func IsReceiptClosed(err error) bool {
	return IsKind(err, KindReceiptClosed)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Kind:    KindInternal,
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
