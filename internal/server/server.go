package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomdlwr "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/client-dev-server/internal/middlewares"
)

const (
	readHeaderTimeout = time.Second
	shutdownTimeout   = 3 * time.Second
)

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	logger            *zap.Logger        `option:"mandatory" validate:"required"`
	addr              string             `option:"mandatory" validate:"required,hostname_port"`
	handlersRegistrar func(e *echo.Echo) `option:"mandatory" validate:"required"`
	accessLogSkipper  echomdlwr.Skipper
	tlsCertFile       string
	tlsKeyFile        string
}

type Server struct {
	lg  *zap.Logger
	srv *http.Server
}

// New builds the server. When a certificate is given the key pair is loaded here,
// so broken TLS files fail the startup before any socket is bound.
func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	var tlsConfig *tls.Config
	if opts.tlsCertFile != "" || opts.tlsKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(opts.tlsCertFile, opts.tlsKeyFile)
		if err != nil {
			return nil, fmt.Errorf("load tls key pair: %v", err)
		}

		tlsConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	e := echo.New()
	e.Use(
		middlewares.NewRequestID(),
		middlewares.NewRequestLogger(opts.logger, opts.accessLogSkipper),
		middlewares.NewRecovery(opts.logger),
	)

	opts.handlersRegistrar(e)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           e,
		TLSConfig:         tlsConfig,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return &Server{
		lg:  opts.logger,
		srv: srv,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Scheme() string {
	if s.srv.TLSConfig != nil {
		return "https"
	}
	return "http"
}

func (s *Server) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return s.srv.Shutdown(ctx) //nolint:contextcheck // graceful shutdown with new context
	})

	eg.Go(func() error {
		s.lg.Info("listen and serve", zap.String("addr", s.srv.Addr), zap.String("scheme", s.Scheme()))

		var err error
		if s.srv.TLSConfig != nil {
			err = s.srv.ListenAndServeTLS("", "")
		} else {
			err = s.srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %v", err)
		}
		return nil
	})

	return eg.Wait()
}
