package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	discordclient "github.com/zestagio/client-dev-server/internal/clients/discord"
	"github.com/zestagio/client-dev-server/internal/config"
	"github.com/zestagio/client-dev-server/internal/logger"
	serverassets "github.com/zestagio/client-dev-server/internal/server-assets"
	serverdebug "github.com/zestagio/client-dev-server/internal/server-debug"
)

var configPath = flag.String("config", "configs/config.toml", "Path to config file")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config path] [http|https]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	mode, err := parseMode(flag.Args())
	if err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), err)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(mode); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run(mode serveMode) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The .env file of the client checkout is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %v", err)
	}

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer logger.Sync()

	lg := zap.L().Named("main")

	// Clients.
	discord, err := discordclient.New(discordclient.NewOptions(
		cfg.Clients.Discord.BasePath,
		discordclient.WithDebugMode(cfg.Clients.Discord.DebugMode),
	))
	if err != nil {
		return fmt.Errorf("create discord client: %v", err)
	}
	if cfg.Global.IsProduction() && cfg.Clients.Discord.DebugMode {
		lg.Warn("discord client in the debug mode")
	}

	// Servers.
	srvAssets, err := initServerAssets(
		mode,
		cfg.Servers.Assets,
		cfg.Assets.CDNBaseURL,
		discord,
		cfg.Clients.Discord.BotToken,
		cfg.Clients.Discord.ChangelogChannelID,
	)
	if err != nil {
		return fmt.Errorf("init assets server: %v", err)
	}

	var srvDebug *serverdebug.Server
	if addr := cfg.Servers.Debug.Addr; addr != "" {
		assetsSwagger, err := serverassets.GetSwagger()
		if err != nil {
			return fmt.Errorf("get assets swagger: %v", err)
		}

		if srvDebug, err = serverdebug.New(serverdebug.NewOptions(addr, assetsSwagger)); err != nil {
			return fmt.Errorf("init debug server: %v", err)
		}
	}

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return srvAssets.Run(ctx) })
	if srvDebug != nil {
		eg.Go(func() error { return srvDebug.Run(ctx) })
	}

	lg.Info(fmt.Sprintf("serving %s at %s://%s", cfg.Servers.Assets.StaticRoot, srvAssets.Scheme(), cfg.Servers.Assets.Addr),
		zap.Bool("cdn_fallback", cfg.Assets.CDNBaseURL != ""),
		zap.Bool("changelog_configured", cfg.Clients.Discord.BotToken != "" && cfg.Clients.Discord.ChangelogChannelID != ""),
	)

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
