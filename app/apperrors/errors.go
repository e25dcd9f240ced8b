package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the application error type surfaced to the HTTP layer. Code is
// the HTTP status the handler should respond with.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewNotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message}
}

func NewBadRequest(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Code: http.StatusConflict, Message: message}
}

func NewUnauthorized(message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: message}
}

// NewInternal wraps an unexpected store/cache failure, keeping the original
// message visible.
func NewInternal(err error) *Error {
	return &Error{
		Code:    http.StatusInternalServerError,
		Message: fmt.Sprintf("internal error: %v", err),
		Err:     err,
	}
}

func IsNotFound(err error) bool {
	return codeOf(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return codeOf(err) == http.StatusConflict
}

func IsBadRequest(err error) bool {
	return codeOf(err) == http.StatusBadRequest
}

// StatusCode maps any error to a response status. Unrecognized errors fall
// back to 500.
func StatusCode(err error) int {
	if code := codeOf(err); code != 0 {
		return code
	}
	return http.StatusInternalServerError
}

func codeOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}
