package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler converts handler errors to the API's {"error": ...} body.
// Internal error details never reach the client; handlers log them and
// return a generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, map[string]string{"error": msg})
}
