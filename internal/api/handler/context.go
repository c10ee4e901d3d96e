package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/eld-logs/internal/api/middleware"
)

// clientID returns the caller injected by the Auth middleware, or "anonymous"
// on routes that are not behind it. It is only used to label logs.
func clientID(c echo.Context) string {
	if id, _ := c.Get(middleware.CtxClientID).(string); id != "" {
		return id
	}
	return "anonymous"
}

// requestID returns the id assigned by the RequestID middleware.
func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
