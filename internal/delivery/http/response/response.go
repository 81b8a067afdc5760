package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the failure envelope. Code mirrors the HTTP status.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine readable side of a failure.
type ErrorInfo struct {
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
	// Stack is only filled in development.
	Stack string `json:"stack,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

type dataBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// JSON writes body as the top-level response. Success bodies are shaped per route.
func JSON(c echo.Context, status int, body any) error {
	return c.JSON(status, body)
}

// Message writes {"message": message}.
func Message(c echo.Context, status int, message string) error {
	return c.JSON(status, messageBody{Message: message})
}

// Data writes {"success": true, "data": data}.
func Data(c echo.Context, status int, data any) error {
	return c.JSON(status, dataBody{Success: true, Data: data})
}

func failure(c echo.Context, status int, message string, info *ErrorInfo) error {
	if message == "" {
		message = http.StatusText(status)
	}

	return c.JSON(status, Response{
		Success: false,
		Code:    status,
		Message: message,
		Error:   info,
	})
}

// Error writes a failure envelope.
func Error(c echo.Context, status int, errorCode, message string, details []string) error {
	return failure(c, status, message, &ErrorInfo{Code: errorCode, Details: details})
}

// ErrorWithStack writes a failure envelope that exposes the error chain.
func ErrorWithStack(c echo.Context, status int, errorCode, message, stack string) error {
	return failure(c, status, message, &ErrorInfo{Code: errorCode, Stack: stack})
}
