package shared

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"gopkg.in/yaml.v3"
)

// ErrorResponse defines the standard error response structure.
// It serializes under every supported representation.
type ErrorResponse struct {
	XMLName xml.Name `json:"-"                  xml:"error"          yaml:"-"`
	Error   string   `json:"error"              xml:"message"        yaml:"error"`
	Code    int      `json:"-"                  xml:"-"              yaml:"-"` // Not serialized, used for logging
	TraceID string   `json:"trace_id,omitempty" xml:"trace_id,omitempty" yaml:"trace_id,omitempty"`
}

// Respond writes a content-negotiated response with the given status code
// and data. The representation follows the request's Accept header; when
// the header names only unsupported types, a 406 error is written instead.
func Respond(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	mediaType, err := NegotiateResponseType(r.Header.Get("Accept"))
	if err != nil {
		// The client refuses everything we can produce. The 406 body
		// is JSON; there is no representation left to negotiate.
		writeAs(w, MediaTypeJSON, http.StatusNotAcceptable, ErrorResponse{
			Error:   "requested media type is not supported",
			TraceID: GetTraceID(r.Context()),
		})
		return
	}

	writeAs(w, mediaType, status, data)
}

// RespondWithError writes a content-negotiated error response with the
// given status code and message. It also sets the TraceID from the
// request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	Respond(w, r, status, ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes an error response and also logs the
// detailed error. The client only ever sees the sanitized message; the
// raw error stays in the logs.
//
// Log level strategy: 5xx at ERROR, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	Respond(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: traceID,
	})
}

// writeAs marshals data under the given media type and writes it with the
// status code. Marshal failures degrade to a plain 500; at that point
// nothing better can be sent.
func writeAs(w http.ResponseWriter, mediaType MediaType, status int, data interface{}) {
	body, err := marshalAs(mediaType, data)
	if err != nil {
		slog.Error("failed to encode response", "error", err, "media_type", string(mediaType))
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", string(mediaType))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// marshalAs encodes data under one of the supported representations.
func marshalAs(mediaType MediaType, data interface{}) ([]byte, error) {
	switch mediaType {
	case MediaTypeXML:
		return marshalXML(data)
	case MediaTypeYAML:
		return yaml.Marshal(data)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		if err := enc.Encode(data); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// marshalXML encodes data as an XML document. encoding/xml cannot emit
// top-level slices or scalars, so lists are wrapped in a List element and
// scalars in a Value element; structs marshal under their own root.
func marshalXML(data interface{}) ([]byte, error) {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			break
		}
		v = v.Elem()
	}

	if v.IsValid() {
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			if v.Type().Elem().Kind() != reflect.Uint8 {
				return marshalXMLList(v)
			}
		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64,
			reflect.String:
			wrapper := struct {
				XMLName xml.Name `xml:"Value"`
				Value   string   `xml:",chardata"`
			}{Value: fmt.Sprint(v.Interface())}
			return xml.Marshal(wrapper)
		}
	}

	return xml.Marshal(data)
}

// marshalXMLList encodes each element in sequence inside a List root.
func marshalXMLList(v reflect.Value) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<List>")

	enc := xml.NewEncoder(&buf)
	for i := 0; i < v.Len(); i++ {
		if err := enc.Encode(v.Index(i).Interface()); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	buf.WriteString("</List>")
	return buf.Bytes(), nil
}
