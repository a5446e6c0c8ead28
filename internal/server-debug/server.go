package serverdebug

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/client-dev-server/internal/buildinfo"
	"github.com/zestagio/client-dev-server/internal/logger"
	"github.com/zestagio/client-dev-server/internal/middlewares"
)

const (
	readHeaderTimeout = time.Second
	shutdownTimeout   = 3 * time.Second
)

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	addr          string      `option:"mandatory" validate:"required,hostname_port"`
	assetsSwagger *openapi3.T `option:"mandatory" validate:"required"`
}

type Server struct {
	lg            *zap.Logger
	srv           *http.Server
	assetsSwagger *openapi3.T
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	lg := zap.L().Named("server-debug")

	e := echo.New()
	e.Use(
		middlewares.NewRequestLogger(lg, nil),
		middlewares.NewRecovery(lg),
	)

	s := &Server{
		lg: lg,
		srv: &http.Server{
			Addr:              opts.addr,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		assetsSwagger: opts.assetsSwagger,
	}
	index := newIndexPage()

	e.GET("/version", s.Version)
	index.addPage("/version", "Get build information")

	e.GET("/log/level", echo.WrapHandler(logger.Level))
	e.PUT("/log/level", echo.WrapHandler(logger.Level))
	index.addPage("/log/level", "Get current log level")

	{
		pprofMux := http.NewServeMux()
		pprofMux.HandleFunc("/debug/pprof/", pprof.Index)
		pprofMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		pprofMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		pprofMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		pprofMux.HandleFunc("/debug/pprof/trace", pprof.Trace)

		e.GET("/debug/pprof/*", echo.WrapHandler(pprofMux))
		index.addPage("/debug/pprof/", "Go std profiler")
		index.addPage("/debug/pprof/profile?seconds=30", "Take half-min profile")
	}

	e.GET("/schema/assets", s.SchemaAssets)
	index.addPage("/schema/assets", "Get asset server OpenAPI specification")

	e.GET("/", index.handler)
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(
		func() error {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return s.srv.Shutdown(ctx) //nolint:contextcheck // graceful shutdown with new context
		},
	)

	eg.Go(
		func() error {
			s.lg.Info("listen and serve", zap.String("addr", s.srv.Addr))

			if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen and serve: %v", err)
			}
			return nil
		},
	)

	return eg.Wait()
}

func (s *Server) Version(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, buildinfo.BuildInfo)
}

func (s *Server) SchemaAssets(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, s.assetsSwagger)
}
