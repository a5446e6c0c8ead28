package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zestagio/client-dev-server/internal/assets"
	discordclient "github.com/zestagio/client-dev-server/internal/clients/discord"
	"github.com/zestagio/client-dev-server/internal/config"
	"github.com/zestagio/client-dev-server/internal/server"
	serverassets "github.com/zestagio/client-dev-server/internal/server-assets"
	"github.com/zestagio/client-dev-server/internal/server/errhandler"
	getchangelog "github.com/zestagio/client-dev-server/internal/usecases/get-changelog"
)

const nameServerAssets = "server-assets"

var errNoTLSFiles = errors.New("https mode requires servers.assets.tls.cert_file and key_file")

func initServerAssets(
	mode serveMode,
	srvCfg config.AssetsServerConfig,
	cdnBaseURL string,

	discord *discordclient.Client,
	botToken string,
	channelID string,
) (*server.Server, error) {
	if mode == modeHTTPS && !srvCfg.TLS.IsSet() {
		return nil, errNoTLSFiles
	}

	lg := zap.L().Named(nameServerAssets)

	resolver, err := assets.NewResolver(assets.NewOptions(srvCfg.StaticRoot, assets.WithCdnBaseURL(cdnBaseURL)))
	if err != nil {
		return nil, fmt.Errorf("create assets resolver: %v", err)
	}

	getChangelogUseCase, err := getchangelog.New(getchangelog.NewOptions(
		discord,
		getchangelog.WithBotToken(botToken),
		getchangelog.WithChannelID(channelID),
	))
	if err != nil {
		return nil, fmt.Errorf("create get changelog usecase: %v", err)
	}

	handlers, err := serverassets.NewHandlers(serverassets.NewOptions(lg, srvCfg.StaticRoot, resolver, getChangelogUseCase))
	if err != nil {
		return nil, fmt.Errorf("create handlers: %v", err)
	}

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, errhandler.ResponseBuilder))
	if err != nil {
		return nil, fmt.Errorf("create err handler: %v", err)
	}

	opts := []server.OptOptionsSetter{server.WithAccessLogSkipper(serverassets.AccessLogSkipper)}
	if mode == modeHTTPS {
		opts = append(opts,
			server.WithTLSCertFile(srvCfg.TLS.CertFile),
			server.WithTLSKeyFile(srvCfg.TLS.KeyFile),
		)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		srvCfg.Addr,
		serverassets.NewHandlersRegistrar(handlers, errHandler.Handle),
		opts...,
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
