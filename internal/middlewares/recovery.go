package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func NewRecovery(lg *zap.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(eCtx echo.Context, err error, stack []byte) error {
			lg.With(
				zap.Error(err),
				zap.String("path", eCtx.Request().URL.Path),
				zap.String("stack", string(stack)),
			).Error("panic recovered")
			return err
		},
	})
}
