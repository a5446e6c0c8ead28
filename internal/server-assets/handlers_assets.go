package serverassets

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zestagio/client-dev-server/internal/assets"
)

// ServeAsset answers /data/{sprites,sounds}/ requests from the local copy or with a CDN redirect.
// It sets no Cache-Control, the no-store policy of middlewares.NewCacheControl applies to local copies too.
func (h Handlers) ServeAsset(eCtx echo.Context) (bool, error) {
	kind, filename, ok := assets.Match(eCtx.Request().URL.Path)
	if !ok {
		return false, nil
	}

	res, err := h.resolver.Resolve(kind, filename)
	if err != nil {
		if errIO := new(assets.LocalIOError); errors.As(err, &errIO) {
			h.logger.Warn("read local asset", zap.Error(err))
			return true, eCtx.String(http.StatusInternalServerError, "Error serving local file: "+errIO.Err.Error())
		}
		return true, fmt.Errorf("resolve %s asset: %w", kind, err)
	}

	switch res.Outcome {
	case assets.OutcomeLocalFile:
		eCtx.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(res.Content)))
		if eCtx.Request().Method == http.MethodHead {
			eCtx.Response().Header().Set(echo.HeaderContentType, echo.MIMEOctetStream)
			return true, eCtx.NoContent(http.StatusOK)
		}
		return true, eCtx.Blob(http.StatusOK, echo.MIMEOctetStream, res.Content)

	case assets.OutcomeRedirect:
		return true, eCtx.Redirect(http.StatusFound, res.Location)

	case assets.OutcomeNotFound:
	}
	return false, nil
}

// AccessLogSkipper keeps game asset downloads out of the access log.
func AccessLogSkipper(eCtx echo.Context) bool {
	switch eCtx.Request().Method {
	case http.MethodGet, http.MethodHead:
		_, _, ok := assets.Match(eCtx.Request().URL.Path)
		return ok
	}
	return false
}
