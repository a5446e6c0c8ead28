package serverassets_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zestagio/client-dev-server/internal/assets"
	discordclient "github.com/zestagio/client-dev-server/internal/clients/discord"
	"github.com/zestagio/client-dev-server/internal/middlewares"
	"github.com/zestagio/client-dev-server/internal/server"
	"github.com/zestagio/client-dev-server/internal/server/errhandler"
	serverassets "github.com/zestagio/client-dev-server/internal/server-assets"
	getchangelog "github.com/zestagio/client-dev-server/internal/usecases/get-changelog"
)

const testTimeout = 5 * time.Second

type devServer struct {
	url       string
	logs      *observer.ObservedLogs
	discord   *httptest.Server
	discordIn chan *http.Request
}

type devServerOpts struct {
	cdn       string
	botToken  string
	channelID string

	// discordTimeout with a hanging Discord simulates an unreachable upstream.
	discordTimeout time.Duration
	discordHangs   bool
}

func newDevServer(t *testing.T, opts devServerOpts) *devServer {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data", "sprites"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "sprites", "sprites-1.bmp.lzma"), []byte("LZMA\x00\x01"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>client</html>"), 0o644))

	ds := &devServer{discordIn: make(chan *http.Request, 1)}

	ds.discord = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ds.discordIn <- r
		if opts.discordHangs {
			<-r.Context().Done()
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, changelogPayload)
	}))
	t.Cleanup(ds.discord.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	ds.logs = logs
	lg := zap.New(core)

	discordOpts := []discordclient.OptOptionsSetter{}
	if opts.discordTimeout > 0 {
		discordOpts = append(discordOpts, discordclient.WithTimeout(opts.discordTimeout))
	}
	discord, err := discordclient.New(discordclient.NewOptions(ds.discord.URL, discordOpts...))
	require.NoError(t, err)

	uCase, err := getchangelog.New(getchangelog.NewOptions(discord,
		getchangelog.WithBotToken(opts.botToken),
		getchangelog.WithChannelID(opts.channelID),
	))
	require.NoError(t, err)

	resolver, err := assets.NewResolver(assets.NewOptions(root, assets.WithCdnBaseURL(opts.cdn)))
	require.NoError(t, err)

	handlers, err := serverassets.NewHandlers(serverassets.NewOptions(lg, root, resolver, uCase))
	require.NoError(t, err)

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, errhandler.ResponseBuilder))
	require.NoError(t, err)

	srv, err := server.New(server.NewOptions(
		lg,
		"localhost:8080",
		serverassets.NewHandlersRegistrar(handlers, errHandler.Handle),
		server.WithAccessLogSkipper(serverassets.AccessLogSkipper),
	))
	require.NoError(t, err)

	httpSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(httpSrv.Close)
	ds.url = httpSrv.URL

	return ds
}

func (ds *devServer) do(t *testing.T, method, target string) (*http.Response, string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, ds.url+target, http.NoBody)
	require.NoError(t, err)

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	t.Cleanup(client.CloseIdleConnections)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestDevServer_Assets(t *testing.T) {
	ds := newDevServer(t, devServerOpts{cdn: "https://cdn.example.com/client/"})

	t.Run("local file, GET and HEAD agree", func(t *testing.T) {
		getResp, body := ds.do(t, http.MethodGet, "/data/sprites/sprites-1.bmp.lzma")
		headResp, headBody := ds.do(t, http.MethodHead, "/data/sprites/sprites-1.bmp.lzma")

		assert.Equal(t, http.StatusOK, getResp.StatusCode)
		assert.Equal(t, "LZMA\x00\x01", body)
		assert.Equal(t, echo.MIMEOctetStream, getResp.Header.Get(echo.HeaderContentType))
		assert.Equal(t, int64(6), getResp.ContentLength)

		assert.Equal(t, getResp.StatusCode, headResp.StatusCode)
		assert.Empty(t, headBody)
		assert.Equal(t, int64(6), headResp.ContentLength)
	})

	t.Run("missing file is redirected to the cdn", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodHead} {
			resp, _ := ds.do(t, method, "/data/sounds/music/theme%20song.ogg")

			assert.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, "https://cdn.example.com/client/sounds/music/theme%20song.ogg", resp.Header.Get(echo.HeaderLocation))
		}
	})

	t.Run("traversal stays inside the kind directory", func(t *testing.T) {
		resp, _ := ds.do(t, http.MethodGet, "/data/sprites/..%2F..%2Findex.html")

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://cdn.example.com/client/sprites/index.html", resp.Header.Get(echo.HeaderLocation))
	})

	t.Run("file used as a directory is redirected", func(t *testing.T) {
		resp, _ := ds.do(t, http.MethodGet, "/data/sprites/sprites-1.bmp.lzma/frame-1.png")

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://cdn.example.com/client/sprites/sprites-1.bmp.lzma/frame-1.png", resp.Header.Get(echo.HeaderLocation))
	})

	t.Run("sub-delimiters are encoded in the cdn key", func(t *testing.T) {
		resp, _ := ds.do(t, http.MethodGet, "/data/sprites/a+b.bmp")

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://cdn.example.com/client/sprites/a%2Bb.bmp", resp.Header.Get(echo.HeaderLocation))
	})

	t.Run("static fallback", func(t *testing.T) {
		resp, body := ds.do(t, http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "<html>client</html>", body)

		resp, _ = ds.do(t, http.MethodGet, "/js/missing.js")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("cache policy", func(t *testing.T) {
		resp, _ := ds.do(t, http.MethodGet, "/png/logo.png")
		assert.Equal(t, middlewares.CacheControlImmutable, resp.Header.Get(echo.HeaderCacheControl))

		resp, _ = ds.do(t, http.MethodGet, "/data/sprites/sprites-1.bmp.lzma")
		assert.Equal(t, middlewares.CacheControlNoStore, resp.Header.Get(echo.HeaderCacheControl))
	})

	t.Run("asset requests are not logged", func(t *testing.T) {
		for _, e := range ds.logs.All() {
			path, _ := e.ContextMap()["path"].(string)
			assert.False(t, strings.HasPrefix(path, "/data/"), "unexpected access log for %s", path)
		}
		assert.NotZero(t, ds.logs.FilterField(zap.String("path", "/")).Len())
	})
}

func TestDevServer_AssetsWithoutCDN(t *testing.T) {
	ds := newDevServer(t, devServerOpts{})

	for _, target := range []string{"/data/sounds/theme.ogg", "/data/sprites/sprites-1.bmp.lzma/frame-1.png"} {
		for _, method := range []string{http.MethodGet, http.MethodHead} {
			resp, _ := ds.do(t, method, target)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, method+" "+target)
		}
	}
}

func TestDevServer_Changelog(t *testing.T) {
	t.Run("configured credentials win over the query", func(t *testing.T) {
		ds := newDevServer(t, devServerOpts{botToken: "cfg-token", channelID: "111"})

		resp, body := ds.do(t, http.MethodGet, "/api/changelog?token=q-token&channel=222")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, changelogPayload, body)
		assert.Equal(t, "*", resp.Header.Get(echo.HeaderAccessControlAllowOrigin))

		upstream := <-ds.discordIn
		assert.Equal(t, "/channels/111/messages", upstream.URL.Path)
		assert.Equal(t, "10", upstream.URL.Query().Get("limit"))
		assert.Equal(t, "Bot cfg-token", upstream.Header.Get("Authorization"))
		assert.Equal(t, "TibiaWebClient/ChangelogProxy", upstream.Header.Get("User-Agent"))
	})

	t.Run("query credentials fill the gaps", func(t *testing.T) {
		ds := newDevServer(t, devServerOpts{channelID: "111"})

		resp, _ := ds.do(t, http.MethodGet, "/api/changelog?token=q-token&channel=222")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		upstream := <-ds.discordIn
		assert.Equal(t, "/channels/111/messages", upstream.URL.Path)
		assert.Equal(t, "Bot q-token", upstream.Header.Get("Authorization"))
	})

	t.Run("missing credentials", func(t *testing.T) {
		ds := newDevServer(t, devServerOpts{})

		resp, body := ds.do(t, http.MethodGet, "/api/changelog")

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.JSONEq(t, `{"error": "Server mis-config: set DISCORD_BOT_TOKEN and DISCORD_CHANGELOG_CHANNEL_ID"}`, body)
		assert.Empty(t, ds.discordIn)
	})

	t.Run("discord does not answer in time", func(t *testing.T) {
		ds := newDevServer(t, devServerOpts{
			botToken:       "cfg-token",
			channelID:      "111",
			discordTimeout: 100 * time.Millisecond,
			discordHangs:   true,
		})

		resp, body := ds.do(t, http.MethodGet, "/api/changelog")

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get(echo.HeaderAccessControlAllowOrigin))

		var errResp errhandler.Response
		require.NoError(t, json.Unmarshal([]byte(body), &errResp))
		assert.True(t, strings.HasPrefix(errResp.Error, "Failed to reach Discord API: "), errResp.Error)
		assert.Len(t, ds.discordIn, 1)
	})

	t.Run("HEAD is not allowed", func(t *testing.T) {
		ds := newDevServer(t, devServerOpts{botToken: "cfg-token", channelID: "111"})

		resp, body := ds.do(t, http.MethodHead, "/api/changelog")

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, http.MethodGet, resp.Header.Get(echo.HeaderAllow))
		assert.Empty(t, body)
		assert.Empty(t, ds.discordIn)
	})
}

func TestGetSwagger(t *testing.T) {
	swagger, err := serverassets.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	assert.NotNil(t, swagger.Paths.Find("/api/changelog"))
	assert.NotNil(t, swagger.Paths.Find("/data/{kind}/{filename}"))
}
