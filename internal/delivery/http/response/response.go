// Package response defines the JSON envelope every handler replies with.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every handler reply. Data is only set on success and Error
// only on failure, so clients can branch on the Success flag alone.
type Envelope struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo names the failure with a stable business code.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Success writes a successful reply carrying data.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

func fail(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error:   &ErrorInfo{Code: errorCode},
	})
}

// BadRequest writes a 400 reply.
func BadRequest(c echo.Context, errorCode string, message string) error {
	return fail(c, http.StatusBadRequest, errorCode, message)
}

// BindingError writes a 400 reply for a request body that failed to bind.
func BindingError(c echo.Context, errorCode string, message string) error {
	return fail(c, http.StatusBadRequest, errorCode, message)
}

// Unauthorized writes a 401 reply.
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return fail(c, http.StatusUnauthorized, errorCode, message)
}
