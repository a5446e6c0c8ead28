package main

import (
	"errors"
	"fmt"
	"strings"
)

type serveMode string

const (
	modeHTTP  serveMode = "http"
	modeHTTPS serveMode = "https"
)

var errUsage = errors.New("invalid arguments")

// parseMode accepts at most one positional argument, http or https in any case.
func parseMode(args []string) (serveMode, error) {
	switch len(args) {
	case 0:
		return modeHTTP, nil
	case 1:
		switch m := serveMode(strings.ToLower(args[0])); m {
		case modeHTTP, modeHTTPS:
			return m, nil
		}
		return "", fmt.Errorf("%w: unknown mode %q", errUsage, args[0])
	}
	return "", fmt.Errorf("%w: expected at most one mode, got %d arguments", errUsage, len(args))
}
