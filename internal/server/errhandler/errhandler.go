package errhandler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/client-dev-server/internal/errors"
)

var _ echo.HTTPErrorHandler = Handler{}.Handle

//go:generate options-gen -out-filename=errhandler_options.gen.go -from-struct=Options
type Options struct {
	logger          *zap.Logger                    `option:"mandatory" validate:"required"`
	responseBuilder func(code int, msg string) any `option:"mandatory" validate:"required"`
}

// Handler renders errors returned by the handlers as {"error": message} JSON
// with the error code as HTTP status.
type Handler struct {
	lg              *zap.Logger
	responseBuilder func(code int, msg string) any
}

func New(opts Options) (Handler, error) {
	if err := opts.Validate(); err != nil {
		return Handler{}, fmt.Errorf("validate options: %v", err)
	}

	return Handler{
		lg:              opts.logger,
		responseBuilder: opts.responseBuilder,
	}, nil
}

func (h Handler) Handle(err error, eCtx echo.Context) {
	if eCtx.Response().Committed {
		return
	}

	// Details stay in the logs, the client gets the code and the message only.
	code, msg, details := internalerrors.ProcessServerError(err)
	if code >= http.StatusInternalServerError {
		h.lg.Debug("handler error", zap.Int("code", code), zap.String("details", details))
	}

	if err2 := eCtx.JSON(code, h.responseBuilder(code, msg)); err2 != nil {
		h.lg.Error("error handler JSON", zap.Error(err2), zap.NamedError("handled", err))
	}
}
