package shared

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Global validator instance for reuse
var validate = validator.New()

// maxBodyBytes caps request body size. The payloads here are flat
// records; anything near this limit is not a legitimate request.
const maxBodyBytes = 1 << 20

// DecodeBody decodes the request body into the given struct, selecting
// the decoder from the Content-Type header. An absent Content-Type is
// treated as JSON. Returns ErrUnsupportedMediaType for anything outside
// the supported matrix.
func DecodeBody(r *http.Request, v interface{}) error {
	mediaType, err := NegotiateRequestType(r.Header.Get("Content-Type"))
	if err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	switch mediaType {
	case MediaTypeXML:
		return xml.Unmarshal(body, v)
	case MediaTypeYAML:
		return yaml.Unmarshal(body, v)
	default:
		return json.Unmarshal(body, v)
	}
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Prefer the object's own Validate method when it has one.
	if validatable, ok := v.(interface{ Validate() error }); ok {
		return validatable.Validate()
	}

	return validate.Struct(v)
}
