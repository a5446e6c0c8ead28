package validator

import (
	"net/url"

	"github.com/go-playground/validator/v10"
	optsGenValidator "github.com/kazhuravlev/options-gen/pkg/validator"
)

var Validator = validator.New()

func init() {
	optsGenValidator.Set(Validator)

	if err := Validator.RegisterValidation("base_url", isBaseURL); err != nil {
		panic(err)
	}
}

// isBaseURL accepts absolute http(s) URLs that can be used as a prefix for other paths,
// i.e. without query string and fragment.
func isBaseURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && u.RawQuery == "" && u.Fragment == ""
}
