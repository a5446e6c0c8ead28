package config

import (
	"fmt"
	"net"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/client-dev-server/internal/validator"
)

// env holds the variables that take precedence over the config file.
// They are usually provided by the .env file of the client checkout.
type env struct {
	ServerHost       string `envconfig:"SERVER_HOST"`
	ServerPort       string `envconfig:"SERVER_PORT"`
	StaticRoot       string `envconfig:"STATIC_ROOT"`
	AssetBaseURL     string `envconfig:"ASSET_BASE_URL"`
	DiscordBotToken  string `envconfig:"DISCORD_BOT_TOKEN"`
	DiscordChannelID string `envconfig:"DISCORD_CHANGELOG_CHANNEL_ID"`
}

func ParseAndValidate(filename string) (Config, error) {
	var conf Config
	if _, err := toml.DecodeFile(filename, &conf); err != nil {
		return conf, err
	}

	var e env
	if err := envconfig.Process("", &e); err != nil {
		return conf, fmt.Errorf("process env: %v", err)
	}

	if err := e.apply(&conf); err != nil {
		return conf, err
	}

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

func (e env) apply(conf *Config) error {
	addr, err := overrideAddr(conf.Servers.Assets.Addr, e.ServerHost, e.ServerPort)
	if err != nil {
		return fmt.Errorf("override assets server addr: %v", err)
	}
	conf.Servers.Assets.Addr = addr

	if e.StaticRoot != "" {
		conf.Servers.Assets.StaticRoot = e.StaticRoot
	}
	if e.AssetBaseURL != "" {
		conf.Assets.CDNBaseURL = e.AssetBaseURL
	}
	if e.DiscordBotToken != "" {
		conf.Clients.Discord.BotToken = e.DiscordBotToken
	}
	if e.DiscordChannelID != "" {
		conf.Clients.Discord.ChangelogChannelID = e.DiscordChannelID
	}
	return nil
}

func overrideAddr(addr, host, port string) (string, error) {
	if host == "" && port == "" {
		return addr, nil
	}

	var h, p string
	if addr != "" {
		var err error
		if h, p, err = net.SplitHostPort(addr); err != nil {
			return "", err
		}
	}

	if host != "" {
		h = host
	}
	if port != "" {
		p = port
	}
	return net.JoinHostPort(h, p), nil
}
