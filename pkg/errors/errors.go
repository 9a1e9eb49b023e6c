package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a client-facing message.
// Delivery layers translate domain errors into these before responding.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// StatusCode returns the HTTP status this error maps to.
func (e *HTTPError) StatusCode() int {
	return e.Code
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// ErrInternalServerError is the generic 500 returned for unmapped errors.
var ErrInternalServerError = NewHTTPError(500, "internal server error")
