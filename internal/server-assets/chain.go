package serverassets

import (
	"github.com/labstack/echo/v4"
)

// Route serves the request if it recognises it.
// handled=false passes the request to the next route of the chain.
type Route func(eCtx echo.Context) (handled bool, err error)

// Chain tries the routes in order and hands unclaimed requests to the fallback.
func Chain(fallback echo.HandlerFunc, routes ...Route) echo.HandlerFunc {
	return func(eCtx echo.Context) error {
		for _, r := range routes {
			handled, err := r(eCtx)
			if handled || err != nil {
				return err
			}
		}
		return fallback(eCtx)
	}
}

// Handle dispatches GET and HEAD requests: changelog proxy, game assets, static files.
func (h Handlers) Handle() echo.HandlerFunc {
	return Chain(h.static, h.ServeChangelog, h.ServeAsset)
}
