package discordclient

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBasePath is the root of the Discord REST API v10.
	DefaultBasePath = "https://discord.com/api/v10"

	// DefaultTimeout bounds the whole request, Discord is never retried.
	DefaultTimeout = 10 * time.Second

	userAgent = "TibiaWebClient/ChangelogProxy"
)

//go:generate options-gen -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	basePath  string        `option:"mandatory" validate:"required,url"`
	timeout   time.Duration `default:"10s" validate:"min=1ms"`
	debugMode bool
}

// Client is a tiny read-only client to the Discord REST API.
// Requests are authorized with a bot token passed per call.
type Client struct {
	cli *resty.Client
}

func New(opts Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	cli := resty.New()
	cli.SetDebug(opts.debugMode)
	cli.SetBaseURL(opts.basePath)
	cli.SetTimeout(opts.timeout)
	cli.SetHeader("User-Agent", userAgent)

	return &Client{cli: cli}, nil
}

// Timeout returns the limit applied to every request.
func (c *Client) Timeout() time.Duration {
	return c.cli.GetClient().Timeout
}
