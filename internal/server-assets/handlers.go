package serverassets

import (
	"context"
	"fmt"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zestagio/client-dev-server/internal/assets"
	getchangelog "github.com/zestagio/client-dev-server/internal/usecases/get-changelog"
)

// devMIMETypes are the client sources served as is during development.
var devMIMETypes = map[string]string{
	".ts":  "application/javascript",
	".tsx": "application/javascript",
	".jsx": "application/javascript",
	".mjs": "application/javascript",
}

//go:generate mockgen -source=$GOFILE -destination=mocks/handlers_mocks.gen.go -package=serverassetsmocks
type assetResolver interface {
	Resolve(kind assets.Kind, filename string) (assets.Resolution, error)
}

type getChangelogUseCase interface {
	Handle(ctx context.Context, req getchangelog.Request) (getchangelog.Response, error)
}

//go:generate options-gen -out-filename=handlers_options.gen.go -from-struct=Options
type Options struct {
	logger       *zap.Logger         `option:"mandatory" validate:"required"`
	staticRoot   string              `option:"mandatory" validate:"required"`
	resolver     assetResolver       `option:"mandatory" validate:"required"`
	getChangelog getChangelogUseCase `option:"mandatory" validate:"required"`
}

type Handlers struct {
	Options
	static echo.HandlerFunc
}

func NewHandlers(opts Options) (Handlers, error) {
	if err := opts.Validate(); err != nil {
		return Handlers{}, fmt.Errorf("validate options: %v", err)
	}

	for ext, typ := range devMIMETypes {
		if err := mime.AddExtensionType(ext, typ); err != nil {
			return Handlers{}, fmt.Errorf("register mime type for %q: %v", ext, err)
		}
	}

	return Handlers{
		Options: opts,
		static:  echo.WrapHandler(http.FileServer(http.Dir(opts.staticRoot))),
	}, nil
}
