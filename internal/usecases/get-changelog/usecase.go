package getchangelog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zestagio/client-dev-server/pkg/fallback"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/usecase_mock.gen.go -package=getchangelogmocks

// MessagesLimit is the number of the most recent channel messages making up the changelog.
const MessagesLimit = 10

const (
	BotTokenSetting  = "DISCORD_BOT_TOKEN"
	ChannelIDSetting = "DISCORD_CHANGELOG_CHANNEL_ID"
)

var ErrMissingCredentials = errors.New("missing credentials")

// MissingCredentialsError lists the settings that were found neither in the config nor in the request.
type MissingCredentialsError struct {
	Settings []string
}

func (e *MissingCredentialsError) Error() string {
	return "Server mis-config: set " + strings.Join(e.Settings, " and ")
}

func (e *MissingCredentialsError) Is(target error) bool {
	return target == ErrMissingCredentials
}

type messagesClient interface {
	ChannelMessages(ctx context.Context, botToken, channelID string, limit int) ([]byte, error)
}

//go:generate options-gen -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	client    messagesClient `option:"mandatory" validate:"required"`
	botToken  string
	channelID string
}

type UseCase struct {
	Options
}

func New(opts Options) (UseCase, error) {
	if err := opts.Validate(); err != nil {
		return UseCase{}, fmt.Errorf("validate options: %v", err)
	}
	return UseCase{Options: opts}, nil
}

func (u UseCase) Handle(ctx context.Context, req Request) (Response, error) {
	token, hasToken := fallback.Resolve(u.botToken, req.BotToken)
	channelID, hasChannel := fallback.Resolve(u.channelID, req.ChannelID)

	if !hasToken || !hasChannel {
		missing := new(MissingCredentialsError)
		if !hasToken {
			missing.Settings = append(missing.Settings, BotTokenSetting)
		}
		if !hasChannel {
			missing.Settings = append(missing.Settings, ChannelIDSetting)
		}
		return Response{}, missing
	}

	messages, err := u.client.ChannelMessages(ctx, token, channelID, MessagesLimit)
	if err != nil {
		return Response{}, fmt.Errorf("list channel messages: %w", err)
	}

	return Response{Messages: messages}, nil
}
