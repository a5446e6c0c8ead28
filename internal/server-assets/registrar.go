package serverassets

import (
	"github.com/labstack/echo/v4"

	"github.com/zestagio/client-dev-server/internal/middlewares"
)

func NewHandlersRegistrar(handlers Handlers, httpErrorHandler echo.HTTPErrorHandler) func(e *echo.Echo) {
	return func(e *echo.Echo) {
		e.Use(middlewares.NewCacheControl())

		h := handlers.Handle()
		e.GET("/*", h)
		e.HEAD("/*", h)

		e.HTTPErrorHandler = httpErrorHandler
	}
}
