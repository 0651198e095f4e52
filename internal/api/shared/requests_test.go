package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRecordRequest struct {
	Name string `json:"name" xml:"name" yaml:"name" validate:"required"`
	Age  int    `json:"age"  xml:"age"  yaml:"age"  validate:"gte=0"`
}

func newBodyRequest(contentType, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestDecodeBodyPerContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{name: "JSON", contentType: "application/json", body: `{"name":"Douglas","age":30}`},
		{name: "JSON is the default", contentType: "", body: `{"name":"Douglas","age":30}`},
		{name: "XML", contentType: "application/xml", body: `<createRecordRequest><name>Douglas</name><age>30</age></createRecordRequest>`},
		{name: "YAML", contentType: "application/x-yaml", body: "name: Douglas\nage: 30\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var decoded createRecordRequest
			err := DecodeBody(newBodyRequest(tc.contentType, tc.body), &decoded)

			require.NoError(t, err)
			assert.Equal(t, "Douglas", decoded.Name)
			assert.Equal(t, 30, decoded.Age)
		})
	}
}

func TestDecodeBodyUnsupportedContentType(t *testing.T) {
	var decoded createRecordRequest
	err := DecodeBody(newBodyRequest("application/octet-stream", "xxxx"), &decoded)

	require.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestDecodeBodyMalformedPayload(t *testing.T) {
	var decoded createRecordRequest
	err := DecodeBody(newBodyRequest("application/json", `{"name":`), &decoded)

	require.Error(t, err)
}

func TestValidateRequest(t *testing.T) {
	require.NoError(t, ValidateRequest(&createRecordRequest{Name: "Douglas", Age: 30}))

	err := ValidateRequest(&createRecordRequest{Age: 30})
	require.Error(t, err, "missing required field should fail validation")
}
