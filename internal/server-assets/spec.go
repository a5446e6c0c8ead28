package serverassets

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger returns the OpenAPI document describing the asset server endpoints.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %v", err)
	}
	return swagger, nil
}
