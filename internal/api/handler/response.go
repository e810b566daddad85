package handler

import "github.com/labstack/echo/v4"

// Response is the canonical JSON envelope for every endpoint.
// Failures carry success=false and a message; the central error handler
// renders those, so handlers only build the success shape.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}
