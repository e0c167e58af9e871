// Package web defines the API error taxonomy and the response envelope.
// Handlers return *web.Error values instead of writing error responses
// themselves; the centralized ErrorHandler translates every fault into
// a status code and a {status:"error", message} body. This keeps the
// success/error shape identical across all endpoints.
package web

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response body. Data is set on success,
// Message on error.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps payload data in a success envelope.
func OK(data any) Envelope {
	return Envelope{Status: "success", Data: data}
}

// Error is a classified API fault carrying the HTTP status it maps to.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validation reports bad, missing or malformed input (400).
func Validation(format string, args ...any) *Error {
	return newError(http.StatusBadRequest, format, args...)
}

// Authentication reports a missing or invalid credential (401).
func Authentication(format string, args ...any) *Error {
	return newError(http.StatusUnauthorized, format, args...)
}

// Authorization reports a valid credential with insufficient role or
// ownership (403).
func Authorization(format string, args ...any) *Error {
	return newError(http.StatusForbidden, format, args...)
}

// NotFound reports an absent referenced entity (404).
func NotFound(format string, args ...any) *Error {
	return newError(http.StatusNotFound, format, args...)
}

// Conflict reports a uniqueness violation such as a duplicate email or
// product code (409).
func Conflict(format string, args ...any) *Error {
	return newError(http.StatusConflict, format, args...)
}

// Internal reports an unexpected persistence or runtime fault (500).
func Internal(format string, args ...any) *Error {
	return newError(http.StatusInternalServerError, format, args...)
}

// ErrorHandler is installed as the Echo HTTPErrorHandler. Every fault
// funnels through here: classified *Error values keep their code and
// message, unmatched routes become a 404 naming the path, and anything
// else is logged and reported as a generic internal error so details
// never leak to clients.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	switch e := err.(type) {
	case *Error:
		code = e.Code
		msg = e.Message
	case *echo.HTTPError:
		code = e.Code
		if code == http.StatusNotFound || code == http.StatusMethodNotAllowed {
			msg = fmt.Sprintf("no route for %s", c.Request().URL.Path)
			code = http.StatusNotFound
		} else if s, ok := e.Message.(string); ok {
			msg = s
		}
	default:
		log.Printf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, Envelope{Status: "error", Message: msg})
}
