package assets

import (
	"fmt"
	"regexp"
	"strings"
)

type Kind string

const (
	KindSprites Kind = "sprites"
	KindSounds  Kind = "sounds"
)

var pathRe = regexp.MustCompile(`(?i)^/data/(sprites|sounds)/(.+)$`)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindSprites, KindSounds:
		return k, nil
	}
	return "", fmt.Errorf("unknown asset kind %q", s)
}

// Match reports whether the request path addresses a game asset,
// i.e. /data/sprites/<filename> or /data/sounds/<filename>.
func Match(path string) (kind Kind, filename string, ok bool) {
	m := pathRe.FindStringSubmatch(path)
	if m == nil {
		return "", "", false
	}

	kind, err := ParseKind(m[1])
	if err != nil {
		return "", "", false
	}
	return kind, m[2], true
}
