//go:build e2e

package devclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 15 * time.Second

// Client talks to a running dev server. Redirects are not followed.
type Client struct {
	cli *resty.Client
}

func New(endpoint string) *Client {
	cli := resty.New()
	cli.SetBaseURL(endpoint)
	cli.SetTimeout(requestTimeout)
	cli.SetRedirectPolicy(resty.NoRedirectPolicy())
	return &Client{cli: cli}
}

func (c *Client) Get(ctx context.Context, path string) (*resty.Response, error) {
	return c.do(ctx, resty.MethodGet, path)
}

func (c *Client) Head(ctx context.Context, path string) (*resty.Response, error) {
	return c.do(ctx, resty.MethodHead, path)
}

func (c *Client) do(ctx context.Context, method, path string) (*resty.Response, error) {
	resp, err := c.cli.R().SetContext(ctx).Execute(method, path)
	if err != nil && resp == nil {
		return nil, fmt.Errorf("%s %s: %v", method, path, err)
	}
	// NoRedirectPolicy reports the redirect as an error but keeps the response.
	return resp, nil
}
