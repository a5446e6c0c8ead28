package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
)

type Outcome int

const (
	// OutcomeNotFound means the asset is neither local nor redirectable.
	OutcomeNotFound Outcome = iota
	OutcomeLocalFile
	OutcomeRedirect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotFound:
		return "not-found"
	case OutcomeLocalFile:
		return "local-file"
	case OutcomeRedirect:
		return "redirect"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

type Resolution struct {
	Outcome Outcome

	// Content is set for OutcomeLocalFile.
	Content []byte
	// Location is set for OutcomeRedirect.
	Location string
}

// LocalIOError is returned when the local copy of an asset exists but cannot be read.
type LocalIOError struct {
	Path string
	Err  error
}

func (e *LocalIOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *LocalIOError) Unwrap() error {
	return e.Err
}

//go:generate options-gen -out-filename=resolver_options.gen.go -from-struct=Options
type Options struct {
	root       string `option:"mandatory" validate:"required"`
	cdnBaseURL string `validate:"omitempty,url"`
}

// Resolver looks for assets under <root>/data/<kind>/ first and
// falls back to the CDN when one is configured.
type Resolver struct {
	dataDir    string
	cdnBaseURL string
}

func NewResolver(opts Options) (*Resolver, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	return &Resolver{
		dataDir:    filepath.Join(opts.root, "data"),
		cdnBaseURL: strings.TrimRight(opts.cdnBaseURL, "/"),
	}, nil
}

func (r *Resolver) Resolve(kind Kind, filename string) (Resolution, error) {
	name := cleanName(filename)
	if name == "" {
		return Resolution{Outcome: OutcomeNotFound}, nil
	}

	localPath := filepath.Join(r.dataDir, string(kind), filepath.FromSlash(name))

	content, err := readRegularFile(localPath)
	switch {
	case err == nil:
		return Resolution{Outcome: OutcomeLocalFile, Content: content}, nil
	case !isAbsent(err):
		return Resolution{}, &LocalIOError{Path: localPath, Err: err}
	}

	if r.cdnBaseURL == "" {
		return Resolution{Outcome: OutcomeNotFound}, nil
	}
	return Resolution{Outcome: OutcomeRedirect, Location: r.cdnBaseURL + "/" + string(kind) + "/" + escapeKey(name)}, nil
}

// readRegularFile treats directories as missing files.
func readRegularFile(p string) ([]byte, error) {
	if strings.IndexByte(p, 0) >= 0 {
		return nil, fs.ErrNotExist
	}

	fi, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fs.ErrNotExist
	}
	return os.ReadFile(p)
}

// isAbsent reports whether err means there is no such local file: a missing entry,
// a regular file used as a directory or a name the filesystem cannot hold.
// Permission and I/O failures are not absence.
func isAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG)
}

// cleanName removes dot segments so the name never escapes the kind directory.
func cleanName(filename string) string {
	return strings.TrimPrefix(path.Clean("/"+filename), "/")
}

// escapeKey percent-encodes every byte of the object key except unreserved characters
// and the "/" separators. Sub-delimiters such as "+" are encoded too, some S3-compatible
// stores read a bare "+" in a key as a space.
func escapeKey(name string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '/' || isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return c == '-' || c == '_' || c == '.' || c == '~'
}
