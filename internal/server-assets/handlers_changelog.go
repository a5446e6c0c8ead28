package serverassets

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	discordclient "github.com/zestagio/client-dev-server/internal/clients/discord"
	internalerrors "github.com/zestagio/client-dev-server/internal/errors"
	getchangelog "github.com/zestagio/client-dev-server/internal/usecases/get-changelog"
)

const (
	ChangelogPathPrefix = "/api/changelog"

	tokenQueryParam   = "token"
	channelQueryParam = "channel"
)

func (h Handlers) ServeChangelog(eCtx echo.Context) (bool, error) {
	if !strings.HasPrefix(eCtx.Request().URL.Path, ChangelogPathPrefix) {
		return false, nil
	}

	if eCtx.Request().Method != http.MethodGet {
		eCtx.Response().Header().Set(echo.HeaderAllow, http.MethodGet)
		return true, echo.NewHTTPError(http.StatusMethodNotAllowed, eCtx.Request().Method+" not available for this endpoint")
	}
	return true, h.GetChangelog(eCtx)
}

func (h Handlers) GetChangelog(eCtx echo.Context) error {
	eCtx.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")

	resp, err := h.getChangelog.Handle(eCtx.Request().Context(), getchangelog.Request{
		BotToken:  eCtx.QueryParam(tokenQueryParam),
		ChannelID: eCtx.QueryParam(channelQueryParam),
	})
	if err != nil {
		return changelogError(err)
	}

	eCtx.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(resp.Messages)))
	return eCtx.JSONBlob(http.StatusOK, resp.Messages)
}

func changelogError(err error) error {
	if missing := new(getchangelog.MissingCredentialsError); errors.As(err, &missing) {
		return internalerrors.NewServerError(http.StatusInternalServerError, missing.Error(), err)
	}

	if errHTTP := new(discordclient.HTTPError); errors.As(err, &errHTTP) {
		return internalerrors.NewServerError(errHTTP.Code, errHTTP.Error(), err)
	}

	if errNet := new(discordclient.NetworkError); errors.As(err, &errNet) {
		return internalerrors.NewServerError(http.StatusBadGateway, errNet.Error(), err)
	}

	return internalerrors.NewServerError(http.StatusInternalServerError, err.Error(), err)
}
