package middlewares

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	CacheControlImmutable = "public, max-age=31536000, immutable"
	CacheControlNoStore   = "no-store, no-cache, must-revalidate, max-age=0"

	immutablePrefix = "/png/"
)

// CacheControlFor returns the Cache-Control value for the request path.
// Everything under /png/ is content-addressed, everything else is development content.
func CacheControlFor(path string) string {
	if strings.HasPrefix(path, immutablePrefix) {
		return CacheControlImmutable
	}
	return CacheControlNoStore
}

// NewCacheControl sets Cache-Control right before the status line is written,
// so it overrides the value set by a handler and also covers error responses.
// Local game assets get no-store as well, not a max-age: they change on every
// data rebuild and the path is the only thing the policy looks at.
func NewCacheControl() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(eCtx echo.Context) error {
			res := eCtx.Response()
			value := CacheControlFor(eCtx.Request().URL.Path)
			res.Before(func() {
				res.Header().Set(echo.HeaderCacheControl, value)
			})
			return next(eCtx)
		}
	}
}
