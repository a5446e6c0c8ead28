package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRequestLogger writes the access log. Requests for which skip returns true
// are not logged, skip may be nil.
func NewRequestLogger(lg *zap.Logger, skip middleware.Skipper) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			if c.Request().Method == http.MethodOptions {
				return true
			}
			return skip != nil && skip(c)
		},
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			lg := lg.With(
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("host", v.Host),
				zap.String("method", v.Method),
				zap.String("path", v.URIPath),
				zap.String("request_id", v.RequestID),
				zap.String("user_agent", v.UserAgent),
				zap.Int("status", v.Status),
			)

			if err := v.Error; err != nil {
				lg = lg.With(zap.Error(err))
			}

			switch s := v.Status; {
			case s >= 500:
				lg.Error("server error")
			case s >= 400:
				lg.Warn("client error")
			default:
				lg.Info("success")
			}

			return nil
		},
		HandleError:  true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogHost:      true,
		LogMethod:    true,
		LogURIPath:   true,
		LogRequestID: true,
		LogUserAgent: true,
		LogStatus:    true,
		LogError:     true,
	})
}
