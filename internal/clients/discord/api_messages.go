package discordclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

const remoteName = "Discord API"

var ErrInvalidResponse = errors.New("invalid response")

// HTTPError is returned when Discord answered with a non-2xx status.
type HTTPError struct {
	Code int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTPError %d", e.Code)
}

// NetworkError is returned when Discord could not be reached at all:
// DNS, connection and timeout failures.
type NetworkError struct {
	Remote string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Failed to reach %s: %v", e.Remote, e.Reason())
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Reason strips the request method and URL from transport errors.
func (e *NetworkError) Reason() error {
	if urlErr := new(url.Error); errors.As(e.Err, &urlErr) {
		return urlErr.Err
	}
	return e.Err
}

// ChannelMessages implements
// https://discord.com/developers/docs/resources/message#get-channel-messages
// and returns the raw JSON array of the most recent messages.
func (c *Client) ChannelMessages(ctx context.Context, botToken, channelID string, limit int) ([]byte, error) {
	resp, err := c.cli.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bot "+botToken).
		SetHeader("Content-Type", "application/json").
		SetPathParam("channelID", channelID).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("channels/{channelID}/messages")
	if err != nil {
		if urlErr := new(url.Error); errors.As(err, &urlErr) {
			return nil, &NetworkError{Remote: remoteName, Err: err}
		}
		return nil, fmt.Errorf("send request to discord: %v", err)
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, &HTTPError{Code: code}
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not a JSON document", ErrInvalidResponse)
	}
	return body, nil
}
