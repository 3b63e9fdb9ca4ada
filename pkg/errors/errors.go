package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents the class of failure seen while fetching an image
type ErrorType string

const (
	ErrorTypeNetwork     ErrorType = "network"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeClientError ErrorType = "client_error"
	ErrorTypeServerError ErrorType = "server_error"
	ErrorTypeStorage     ErrorType = "storage"
	ErrorTypeUnknown     ErrorType = "unknown"
)

// Error represents a fetch error with type information
type Error struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *Error) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("%s error: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
}

// FromStatusCode builds an Error for a non-2xx HTTP status
func FromStatusCode(statusCode int) *Error {
	errType := ErrorTypeUnknown
	switch {
	case statusCode == http.StatusNotFound:
		errType = ErrorTypeNotFound
	case statusCode >= 500:
		errType = ErrorTypeServerError
	case statusCode >= 400:
		errType = ErrorTypeClientError
	}

	return &Error{
		Type:    errType,
		Message: http.StatusText(statusCode),
		Code:    statusCode,
	}
}

// Classify returns the ErrorType carried by err, or ErrorTypeUnknown
func Classify(err error) ErrorType {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}
