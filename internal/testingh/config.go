//go:build integration

package testingh

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/client-dev-server/internal/logger"
	"github.com/zestagio/client-dev-server/internal/validator"
)

var Config config

type config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"required,oneof=debug info warn error"`

	DiscordBasePath  string `envconfig:"DISCORD_BASE_PATH" default:"https://discord.com/api/v10" validate:"required,base_url"`
	DiscordBotToken  string `envconfig:"DISCORD_BOT_TOKEN" validate:"required"`
	DiscordChannelID string `envconfig:"DISCORD_CHANNEL_ID" validate:"required,numeric"`
	DiscordDebug     bool   `envconfig:"DISCORD_DEBUG" default:"false"`
}

func init() {
	if err := envconfig.Process("TEST", &Config); err != nil {
		panic(fmt.Sprintf("parse testing config: %v", err))
	}

	if err := validator.Validator.Struct(Config); err != nil {
		panic(fmt.Sprintf("validate testing config: %v", err))
	}

	logger.MustInit(logger.NewOptions(Config.LogLevel))
}
