package shared

import (
	"errors"
	"mime"
	"sort"
	"strconv"
	"strings"
)

// MediaType identifies one of the representations the API can produce
// and consume.
type MediaType string

// Supported media types. JSON is the default whenever the client
// expresses no usable preference.
const (
	MediaTypeJSON MediaType = "application/json"
	MediaTypeXML  MediaType = "application/xml"
	MediaTypeYAML MediaType = "application/x-yaml"
)

// Negotiation errors.
var (
	// ErrNotAcceptable is returned when the Accept header names only
	// media types the API cannot produce.
	ErrNotAcceptable = errors.New("no acceptable representation")

	// ErrUnsupportedMediaType is returned when a request body's
	// Content-Type is not one the API can consume.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// acceptClause is one parsed entry of an Accept header.
type acceptClause struct {
	mediaRange string
	quality    float64
	order      int
}

// NegotiateResponseType selects the response representation for the given
// Accept header value.
//
// Clauses are honored in descending quality order (ties keep header
// order). An empty, absent, or entirely malformed header and the full
// wildcard select JSON. A header that names only unsupported types with
// no wildcard yields ErrNotAcceptable.
func NegotiateResponseType(accept string) (MediaType, error) {
	clauses := parseAccept(accept)
	if len(clauses) == 0 {
		return MediaTypeJSON, nil
	}

	sort.SliceStable(clauses, func(i, j int) bool {
		if clauses[i].quality != clauses[j].quality {
			return clauses[i].quality > clauses[j].quality
		}
		return clauses[i].order < clauses[j].order
	})

	for _, clause := range clauses {
		if clause.quality == 0 {
			// q=0 explicitly refuses a type; it can never be selected.
			continue
		}
		if mt, ok := matchMediaRange(clause.mediaRange); ok {
			return mt, nil
		}
	}

	return "", ErrNotAcceptable
}

// NegotiateRequestType selects the decoder for the given Content-Type
// header value. An absent Content-Type is treated as JSON.
func NegotiateRequestType(contentType string) (MediaType, error) {
	if strings.TrimSpace(contentType) == "" {
		return MediaTypeJSON, nil
	}

	parsed, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", ErrUnsupportedMediaType
	}

	switch parsed {
	case "application/json":
		return MediaTypeJSON, nil
	case "application/xml", "text/xml":
		return MediaTypeXML, nil
	case "application/x-yaml", "application/yaml", "text/yaml":
		return MediaTypeYAML, nil
	default:
		return "", ErrUnsupportedMediaType
	}
}

// parseAccept splits an Accept header into parsed clauses, dropping
// entries that fail media type parsing.
func parseAccept(accept string) []acceptClause {
	if strings.TrimSpace(accept) == "" {
		return nil
	}

	var clauses []acceptClause
	for i, part := range strings.Split(accept, ",") {
		mediaRange, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}

		quality := 1.0
		if q, ok := params["q"]; ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil || parsed < 0 || parsed > 1 {
				continue
			}
			quality = parsed
		}

		clauses = append(clauses, acceptClause{mediaRange: mediaRange, quality: quality, order: i})
	}
	return clauses
}

// matchMediaRange maps a single media range onto a supported MediaType.
func matchMediaRange(mediaRange string) (MediaType, bool) {
	switch mediaRange {
	case "*/*", "application/*", "application/json":
		return MediaTypeJSON, true
	case "application/xml", "text/xml":
		return MediaTypeXML, true
	case "application/x-yaml", "application/yaml", "text/yaml":
		return MediaTypeYAML, true
	default:
		return "", false
	}
}
